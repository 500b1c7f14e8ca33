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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Layout selects which Rabobank download format an input file uses. The bank
// changed the format in January 2018, and the two versions differ in more
// than column order, so the layout is picked once at input open time and
// every version dependent rule keys off it.
type Layout int

const (
	// LayoutLegacy is the pre-2018 format: 19 columns, no header row, an
	// explicit debit/credit flag, and unsigned amounts.
	LayoutLegacy = Layout(iota)

	// Layout2018 is the current format: 26 columns, a header row, signed
	// amounts, and a per account sequence number.
	Layout2018
)

func (l Layout) String() string {
	if l == Layout2018 {
		return "2018"
	}
	return "legacy"
}

// Field names used in RawRecords. Only fields the normalizer reads get a
// constant; the rest are named inline in the layout tables.
const (
	FieldAccount        = "account"
	FieldSequence       = "sequence"
	FieldDate           = "date"
	FieldInterestDate   = "interestDate"
	FieldDebCred        = "debCredCode"
	FieldAmount         = "amount"
	FieldCounterAccount = "counterAccount"
	FieldCounterName    = "counterName"
	FieldBookCode       = "bookCode"
	FieldPaymentRef     = "paymentRef"
	FieldDescr1         = "descr1"
	FieldDescr2         = "descr2"
	FieldDescr3         = "descr3"
	FieldDescr4         = "descr4"
	FieldDescr5         = "descr5"
	FieldDescr6         = "descr6"
)

var legacyFields = []string{
	FieldAccount, "currency", FieldInterestDate, FieldDebCred, FieldAmount,
	FieldCounterAccount, FieldCounterName, FieldDate, FieldBookCode, "budgetCode",
	FieldDescr1, FieldDescr2, FieldDescr3, FieldDescr4, FieldDescr5, FieldDescr6,
	"txRef", "incassantID", "authCode",
}

var fields2018 = []string{
	FieldAccount, "currency", "bic", FieldSequence, FieldDate, FieldInterestDate,
	FieldAmount, "balanceAfter", FieldCounterAccount, FieldCounterName,
	"ultimateName", "initiatingName", "counterBIC", FieldBookCode, "batchID",
	"txRef", "mandateRef", "creditorID", FieldPaymentRef,
	FieldDescr1, FieldDescr2, FieldDescr3,
	"returnReason", "origAmount", "origCurrency", "exchangeRate",
}

// Fields returns the ordered column names for the layout.
func (l Layout) Fields() []string {
	if l == Layout2018 {
		return fields2018
	}
	return legacyFields
}

// HasHeader reports whether files in this layout start with a header row.
func (l Layout) HasHeader() bool {
	return l == Layout2018
}

// DescriptionFields returns the ordered free text description columns.
func (l Layout) DescriptionFields() []string {
	if l == Layout2018 {
		return []string{FieldDescr1, FieldDescr2, FieldDescr3}
	}
	return []string{FieldDescr1, FieldDescr2, FieldDescr3, FieldDescr4, FieldDescr5, FieldDescr6}
}

// RawRecord is one input line decoded under a layout: field name to raw value.
// Records live just long enough to be normalized.
type RawRecord map[string]string

// MalformedRecordError is returned when an input line cannot be decoded under
// the active layout. The whole run aborts on this, no output is written.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (err MalformedRecordError) Error() string {
	return fmt.Sprintf("Malformed record on line %v: %v", err.Line, err.Err)
}

// RecordReader decodes Rabobank CSV lines into RawRecords under a fixed
// layout. Fields are comma separated and double quote enclosed. Empty lines
// are skipped, and the 2018 layout's header row is discarded.
type RecordReader struct {
	layout Layout
	csv    *csv.Reader
	line   int
	header bool
}

func NewRecordReader(r io.Reader, layout Layout) *RecordReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(layout.Fields())
	return &RecordReader{layout: layout, csv: cr, header: layout.HasHeader()}
}

// Read returns the next record. io.EOF signals a clean end of input, any
// other failure is a MalformedRecordError.
func (r *RecordReader) Read() (RawRecord, error) {
	for {
		r.line++
		row, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, MalformedRecordError{perr.Line, perr.Err}
			}
			return nil, MalformedRecordError{r.line, err}
		}

		if r.header {
			r.header = false
			continue
		}

		rec := make(RawRecord, len(row))
		for i, name := range r.layout.Fields() {
			rec[name] = row[i]
		}
		return rec, nil
	}
}

// Line returns the line number of the most recently read record.
func (r *RecordReader) Line() int {
	return r.line
}
