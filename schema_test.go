/*
Copyright 2023 by Milo Christiansen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package rabo2ofx

import (
	"io"
	"strings"
	"testing"
)

// csvLine quotes and joins a full-width row for the layout, filling the
// named columns and leaving the rest empty.
func csvLine(layout Layout, values map[string]string) string {
	fields := layout.Fields()
	row := make([]string, len(fields))
	for i, name := range fields {
		row[i] = `"` + values[name] + `"`
	}
	return strings.Join(row, ",")
}

func headerLine(layout Layout) string {
	fields := layout.Fields()
	row := make([]string, len(fields))
	for i, name := range fields {
		row[i] = `"` + name + `"`
	}
	return strings.Join(row, ",")
}

func TestReadLayout2018(t *testing.T) {
	input := headerLine(Layout2018) + "\n" +
		csvLine(Layout2018, map[string]string{
			FieldAccount:  "NL11RABO0101010101",
			FieldSequence: "4000",
			FieldDate:     "2019-03-01",
			FieldAmount:   "-12,50",
			FieldBookCode: "id",
		}) + "\n"

	r := NewRecordReader(strings.NewReader(input), Layout2018)

	rec, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec[FieldAccount] != "NL11RABO0101010101" {
		t.Errorf("Incorrect account: %v", rec[FieldAccount])
	}
	if rec[FieldSequence] != "4000" || rec[FieldAmount] != "-12,50" {
		t.Errorf("Incorrect field mapping: %#v", rec)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Errorf("Expected EOF, got: %v", err)
	}
}

func TestReadLayoutLegacyNoHeader(t *testing.T) {
	input := csvLine(LayoutLegacy, map[string]string{
		FieldAccount:      "NL11RABO0101010101",
		FieldInterestDate: "20170510",
		FieldDebCred:      "D",
		FieldAmount:       "12,50",
	}) + "\n"

	r := NewRecordReader(strings.NewReader(input), LayoutLegacy)

	rec, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec[FieldDebCred] != "D" || rec[FieldInterestDate] != "20170510" {
		t.Errorf("Incorrect field mapping: %#v", rec)
	}
}

func TestReadSkipsEmptyLines(t *testing.T) {
	line := csvLine(LayoutLegacy, map[string]string{FieldAccount: "A", FieldAmount: "1,00"})
	input := "\n" + line + "\n\n" + line + "\n\n"

	r := NewRecordReader(strings.NewReader(input), LayoutLegacy)

	for i := 0; i < 2; i++ {
		if _, err := r.Read(); err != nil {
			t.Fatalf("Record %v: %v", i, err)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("Expected EOF, got: %v", err)
	}
}

func TestReadMalformed(t *testing.T) {
	// Wrong column count for the layout.
	input := `"only","three","fields"` + "\n"

	r := NewRecordReader(strings.NewReader(input), LayoutLegacy)

	_, err := r.Read()
	if _, ok := err.(MalformedRecordError); !ok {
		t.Errorf("Expected MalformedRecordError, got: %v", err)
	}
}

func TestLayoutShapes(t *testing.T) {
	if len(LayoutLegacy.Fields()) != 19 || LayoutLegacy.HasHeader() {
		t.Errorf("Incorrect legacy layout shape.")
	}
	if len(Layout2018.Fields()) != 26 || !Layout2018.HasHeader() {
		t.Errorf("Incorrect 2018 layout shape.")
	}
	if len(LayoutLegacy.DescriptionFields()) != 6 || len(Layout2018.DescriptionFields()) != 3 {
		t.Errorf("Incorrect description field counts.")
	}
}
