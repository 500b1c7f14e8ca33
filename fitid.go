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
	"strconv"
	"strings"
)

// Date from which downloads carry a usable per account sequence number.
const sequenceCutover = "20180101"

// FITIDGenerator hands out statement transaction IDs that are unique within
// one conversion run. Each run owns its own generator, there is no shared
// state between runs.
//
// IDs are deterministic functions of the transaction data plus a collision
// ordinal, so converting the same file twice produces the same IDs and the
// importer's duplicate detection keeps working. The flip side is that
// uniqueness across runs is the caller's problem: do not split one day's
// transactions over two runs against the same import target, the second run
// restarts the ordinals and the importer will drop them as duplicates.
type FITIDGenerator struct {
	seq map[string]int
}

func NewFITIDGenerator() *FITIDGenerator {
	return &FITIDGenerator{seq: map[string]int{}}
}

// Generate returns the ID for a transaction. When the bank supplied a
// sequence number and the transaction posted on or after the 2018 cutover,
// the key is account plus sequence number and collisions cannot happen.
// Before the cutover the key is date plus the digits of the amount plus a
// direction character, which same day same amount transactions share, so an
// ordinal suffix disambiguates. Calling twice with the same values always
// yields two different IDs.
func (g *FITIDGenerator) Generate(account, sequence, amount, datePosted string) string {
	key := g.key(account, sequence, amount, datePosted)

	ordinal, ok := g.seq[key]
	if ok {
		ordinal++
	}
	g.seq[key] = ordinal

	return key + strconv.Itoa(ordinal)
}

func (g *FITIDGenerator) key(account, sequence, amount, datePosted string) string {
	if sequence != "" && datePosted >= sequenceCutover {
		return account + sequence
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, amount)

	dir := "C"
	if strings.HasPrefix(amount, "-") {
		dir = "D"
	}

	return datePosted + digits + dir
}
