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

import "strings"

// TransferFilter decides which transactions are the duplicate leg of a
// transfer between two accounts that both appear in the same run. A transfer
// shows up once under each account, and without suppression the money
// movement gets booked twice.
//
// Suppression is asymmetric on purpose: for every transfer exactly one leg
// survives, chosen by registry priority, or by processing order when neither
// account is registered.
type TransferFilter struct {
	registry  *AccountRegistry
	processed map[string]bool
}

// NewTransferFilter wraps a registry. A nil registry behaves as an empty
// one: nothing is suppressed by priority, only the processed account rule
// applies.
func NewTransferFilter(registry *AccountRegistry) *TransferFilter {
	if registry == nil {
		registry = NewAccountRegistry(nil)
	}
	return &TransferFilter{registry: registry, processed: map[string]bool{}}
}

// SuppressedCounterparts returns the set of counterparty accounts whose
// transfers must be skipped while emitting the given account.
//
// A registered account trusts every higher priority entry to carry the
// transfer. An unregistered account trusts the whole registry. On top of
// either, every account already emitted this run that is not in the registry
// is trusted too, so between two unregistered accounts the first one
// processed wins.
func (f *TransferFilter) SuppressedCounterparts(account string) map[string]bool {
	account = strings.ToUpper(account)

	var suppressed map[string]bool
	if f.registry.IsKnown(account) {
		suppressed = f.registry.PriorAccounts(account)
	} else {
		suppressed = map[string]bool{}
		for _, a := range f.registry.Accounts() {
			suppressed[a] = true
		}
	}

	for a := range f.processed {
		if !f.registry.IsKnown(a) {
			suppressed[a] = true
		}
	}
	return suppressed
}

// MarkProcessed records that an account's statement has been fully
// assembled. Must be called after each account, the suppression sets for
// every later account depend on it.
func (f *TransferFilter) MarkProcessed(account string) {
	f.processed[strings.ToUpper(account)] = true
}
