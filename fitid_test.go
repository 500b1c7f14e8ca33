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

import "testing"

func TestFITIDSequencePath(t *testing.T) {
	g := NewFITIDGenerator()

	id := g.Generate("NL11RABO0101010101", "4000", "-12,50", "20190301")
	if id != "NL11RABO010101010140000" {
		t.Errorf("Incorrect sequence path ID: %v", id)
	}

	// Same tuple again must still differ.
	id2 := g.Generate("NL11RABO0101010101", "4000", "-12,50", "20190301")
	if id2 != "NL11RABO010101010140001" {
		t.Errorf("Incorrect collision ID on sequence path: %v", id2)
	}
}

func TestFITIDFallbackPath(t *testing.T) {
	g := NewFITIDGenerator()

	// No sequence number: key is date+digits+direction.
	id := g.Generate("NL11RABO0101010101", "", "-12,50", "20170510")
	if id != "201705101250D0" {
		t.Errorf("Incorrect fallback ID: %v", id)
	}

	id = g.Generate("NL11RABO0101010101", "", "12,50", "20170510")
	if id != "201705101250C0" {
		t.Errorf("Incorrect credit direction in fallback ID: %v", id)
	}
}

func TestFITIDFallbackBeforeCutover(t *testing.T) {
	g := NewFITIDGenerator()

	// A sequence number from before 2018 is not trusted.
	id := g.Generate("NL11RABO0101010101", "4000", "10,00", "20171231")
	if id != "201712311000C0" {
		t.Errorf("Pre-cutover sequence number was not ignored: %v", id)
	}
}

// Two accounts with the same date, amount, and direction share a collision
// key on the fallback path and must get ordinals 0 and 1.
func TestFITIDCollision(t *testing.T) {
	g := NewFITIDGenerator()

	a := g.Generate("NL11RABO0101010101", "", "25,00", "20170510")
	b := g.Generate("NL22RABO0202020202", "", "25,00", "20170510")

	if a != "201705102500C0" {
		t.Errorf("Incorrect first colliding ID: %v", a)
	}
	if b != "201705102500C1" {
		t.Errorf("Incorrect second colliding ID: %v", b)
	}
}

func TestFITIDPairwiseDistinct(t *testing.T) {
	g := NewFITIDGenerator()

	seen := map[string]bool{}
	rows := []struct{ account, seq, amount, date string }{
		{"NL11RABO0101010101", "4000", "-12,50", "20190301"},
		{"NL11RABO0101010101", "4000", "-12,50", "20190301"},
		{"NL11RABO0101010101", "", "-12,50", "20170510"},
		{"NL22RABO0202020202", "", "-12,50", "20170510"},
		{"NL22RABO0202020202", "", "12,50", "20170510"},
		{"NL22RABO0202020202", "4001", "12,50", "20180101"},
	}
	for i, row := range rows {
		id := g.Generate(row.account, row.seq, row.amount, row.date)
		if seen[id] {
			t.Errorf("Duplicate ID for row %v: %v", i, id)
		}
		seen[id] = true
	}
}
