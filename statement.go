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
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Statement is all kept transactions for one account plus the date range
// they span.
type Statement struct {
	Account      string
	Transactions []Transaction
	DateStart    string // YYYYMMDD of the earliest kept transaction.
	DateEnd      string // YYYYMMDD of the latest kept transaction.
}

// Stats counts what happened to one account's transactions during assembly.
type Stats struct {
	Seen    int // Transactions read for this account.
	Skipped int // Suppressed duplicate transfer legs.
	Emitted int
	Net     decimal.Decimal // Net movement over the emitted transactions.
}

// Assembler partitions a run's transactions into per account statements,
// dropping duplicate transfer legs along the way.
type Assembler struct {
	filter *TransferFilter
}

func NewAssembler(registry *AccountRegistry) *Assembler {
	return &Assembler{filter: NewTransferFilter(registry)}
}

// Assemble groups transactions by account and filters each group through the
// transfer filter. Accounts are processed in ascending lexical order. That
// order is part of the deduplication contract: it decides which leg survives
// a transfer between two unregistered accounts, so it must not change from
// run to run.
//
// Date ranges cover kept transactions only. An account whose transactions
// were all suppressed still gets a statement, just an empty one.
func (a *Assembler) Assemble(trs []Transaction) ([]Statement, map[string]*Stats) {
	byAccount := map[string][]Transaction{}
	for _, tr := range trs {
		byAccount[tr.Account] = append(byAccount[tr.Account], tr)
	}

	accounts := maps.Keys(byAccount)
	slices.Sort(accounts)

	stmts := []Statement{}
	stats := map[string]*Stats{}
	for _, account := range accounts {
		suppressed := a.filter.SuppressedCounterparts(account)

		st := Statement{Account: account}
		s := &Stats{}
		for _, tr := range byAccount[account] {
			s.Seen++
			if suppressed[strings.ToUpper(tr.CounterAccount)] {
				s.Skipped++
				continue
			}

			if st.DateStart == "" || tr.DatePosted < st.DateStart {
				st.DateStart = tr.DatePosted
			}
			if tr.DatePosted > st.DateEnd {
				st.DateEnd = tr.DatePosted
			}
			if v, err := decimal.NewFromString(strings.Replace(tr.Amount, ",", ".", 1)); err == nil {
				s.Net = s.Net.Add(v)
			}

			st.Transactions = append(st.Transactions, tr)
			s.Emitted++
		}

		a.filter.MarkProcessed(account)
		stats[account] = s
		stmts = append(stmts, st)
	}
	return stmts, stats
}
