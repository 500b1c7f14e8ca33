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

/*
Package rabo2ofx converts Rabobank CSV transaction downloads into OFX 1.x
statement files suitable for GnuCash and other personal finance software.

The interesting parts are the normalization of the bank's versioned CSV
layouts into one canonical transaction form, run-unique FITID generation,
and the suppression of duplicate transfer legs when transactions for several
of your own accounts land in the same download.

The command line tools live under tools/.
*/
package rabo2ofx

import (
	"fmt"
	"time"

	"github.com/teris-io/shortid"
)

type TrnType int

// Transaction type constants for Transaction.Type. The names match the OFX
// TRNTYPE values they are written as.
const (
	TrnCredit = TrnType(iota)
	TrnDebit
	TrnUnknown
)

func (t TrnType) String() string {
	switch t {
	case TrnCredit:
		return "CREDIT"
	case TrnDebit:
		return "DEBIT"
	}
	return "UNKNOWN"
}

// Transaction is one bank transaction in canonical form, ready for emission.
// Values are not modified after normalization.
type Transaction struct {
	Account        string  // Owning account for this leg, whitespace stripped.
	Type           TrnType // Sign of the amount, or the bank's explicit flag in the legacy layout.
	DatePosted     string  // YYYYMMDD
	Amount         string  // Decimal text, sign included.
	FITID          string  // Unique within one conversion run.
	CounterAccount string  // The other party's account. May be empty, never missing.
	Name           string  // Human readable counterparty label.
	Memo           string  // Free text description, already escaped for emission.
}

// BookCodes maps Rabobank booking codes to their labels.
var BookCodes = map[string]string{
	"ac": "acceptgiro",
	"ba": "betaalautomaat",
	"bc": "betalen contactloos",
	"bg": "bankgiro opdracht",
	"cb": "crediteuren betaling",
	"ck": "chipknip",
	"db": "diverse boekingen",
	"eb": "bedrijven euro-incasso",
	"ei": "euro-incasso",
	"fb": "finbox",
	"ga": "geldautomaat euro",
	"gb": "geldautomaat vv",
	"id": "ideal",
	"kh": "kashandeling",
	"ma": "machtiging",
	"sb": "salarisbetaling",
	"tb": "eigen rekening",
	"sp": "spoedbetaling",
	"CR": "tegoed",
	"D":  "tekort",
}

// UnknownBookCodeError is returned when a booking code that needs a label has
// no entry in BookCodes. The table is closed, so this is a data defect, not
// something to recover from.
type UnknownBookCodeError string

func (err UnknownBookCodeError) Error() string {
	return fmt.Sprintf("Unknown booking code: %v", string(err))
}

// IDService is a trivial server that provides a stream of unique IDs.
// These are random IDs for naming things within a run, not FITIDs. FITIDs
// must be deterministic and come from FITIDGenerator.
var IDService <-chan string

func init() {
	c := make(chan string)
	IDService = c

	go func() {
		idsource := shortid.MustNew(16, shortid.DefaultABC, uint64(time.Now().UnixNano()))

		for {
			c <- idsource.MustGenerate()
		}
	}()
}
