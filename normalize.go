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
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BadAmountError is returned when an amount field does not parse as a
// decimal number.
type BadAmountError string

func (err BadAmountError) Error() string {
	return fmt.Sprintf("Amount does not parse as a decimal number: %v", string(err))
}

// Normalizer maps raw records into canonical Transactions and assigns their
// FITIDs. The mapping rules are keyed by the input layout, everything else
// is a pure function of the record.
type Normalizer struct {
	Layout      Layout
	DotDecimals bool // Swap the decimal comma for a dot in amounts.
	Log         zerolog.Logger

	ids *FITIDGenerator
}

func NewNormalizer(layout Layout, dotDecimals bool, log zerolog.Logger) *Normalizer {
	return &Normalizer{Layout: layout, DotDecimals: dotDecimals, Log: log, ids: NewFITIDGenerator()}
}

// Normalize maps one raw record to a canonical Transaction.
func (n *Normalizer) Normalize(rec RawRecord) (Transaction, error) {
	typ := n.mapType(rec)

	amount, err := n.mapAmount(rec, typ)
	if err != nil {
		return Transaction{}, err
	}

	name, memo, err := n.mapNameMemo(rec)
	if err != nil {
		return Transaction{}, err
	}

	tr := Transaction{
		Account:        n.mapAccount(rec),
		Type:           typ,
		DatePosted:     n.mapDate(rec),
		Amount:         amount,
		CounterAccount: rec[FieldCounterAccount],
		Name:           name,
		Memo:           memo,
	}
	tr.FITID = n.ids.Generate(tr.Account, rec[FieldSequence], tr.Amount, tr.DatePosted)
	return tr, nil
}

func (n *Normalizer) mapAccount(rec RawRecord) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, rec[FieldAccount])
}

// The 2018 layout infers the direction from the sign of the amount. The
// legacy layout carries an explicit flag instead, and an unrecognized flag
// degrades to UNKNOWN rather than aborting: the row is still worth emitting
// and the consumer tolerates the sentinel.
func (n *Normalizer) mapType(rec RawRecord) TrnType {
	if n.Layout == Layout2018 {
		if strings.HasPrefix(rec[FieldAmount], "-") {
			return TrnDebit
		}
		return TrnCredit
	}

	switch rec[FieldDebCred] {
	case "C":
		return TrnCredit
	case "D":
		return TrnDebit
	}
	n.Log.Warn().Str("flag", rec[FieldDebCred]).Msg("Unrecognized debit/credit flag, emitting with type UNKNOWN")
	return TrnUnknown
}

func (n *Normalizer) mapDate(rec RawRecord) string {
	field := FieldInterestDate
	if n.Layout == Layout2018 {
		field = FieldDate
	}
	return strings.ReplaceAll(rec[field], "-", "")
}

func (n *Normalizer) mapAmount(rec RawRecord, typ TrnType) (string, error) {
	amt := rec[FieldAmount]

	// Legacy amounts are unsigned, the direction lives in the flag column.
	if n.Layout == LayoutLegacy && typ != TrnCredit {
		amt = "-" + amt
	}

	if n.DotDecimals {
		amt = SwapDecimalSeparator(amt)
	}

	if _, err := decimal.NewFromString(strings.Replace(amt, ",", ".", 1)); err != nil {
		return "", BadAmountError(rec[FieldAmount])
	}
	return amt, nil
}

// mapNameMemo builds the counterparty label and the memo. The baseline is
// always counter account plus counter name, then at most one booking code
// rule adjusts it.
func (n *Normalizer) mapNameMemo(rec RawRecord) (string, string, error) {
	glue := ""
	if rec[FieldCounterAccount] != "" && rec[FieldCounterName] != "" {
		glue = " "
	}
	name := rec[FieldCounterAccount] + glue + rec[FieldCounterName]

	parts := []string{}
	for _, f := range n.Layout.DescriptionFields() {
		parts = append(parts, rec[f])
	}
	memo := strings.Join(parts, "")

	switch {
	case rec[FieldBookCode] == "ba" && name == "":
		// Point of sale rows usually carry the payee in the first
		// description field.
		name = parts[0]
		memo = strings.Join(parts[1:], "")
	case rec[FieldBookCode] == "db":
		label, ok := BookCodes[rec[FieldBookCode]]
		if !ok {
			return "", "", UnknownBookCodeError(rec[FieldBookCode])
		}
		glue = ""
		if name != "" {
			glue = " "
		}
		name = "[db] " + label + glue + name
	case rec[FieldBookCode] == "ac" && n.Layout == Layout2018:
		memo += "betalingskenmerk " + rec[FieldPaymentRef]
	}

	// "&amp" without the semicolon is what this tool has always written and
	// what the downstream importers accept. Do not fix it here, that is an
	// explicit compatibility break for a future version.
	memo = strings.ReplaceAll(memo, "&", "&amp")

	return strings.TrimSpace(name), strings.TrimSpace(memo), nil
}

// SwapDecimalSeparator exchanges every comma and dot in an amount string.
// Applying it twice restores the input, so a converted value maps back to
// the original.
func SwapDecimalSeparator(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',':
			return '.'
		case '.':
			return ','
		}
		return r
	}, s)
}
