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
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	yaml "gopkg.in/yaml.v2"
)

// AccountRegistry is the ordered list of accounts under the user's control,
// loaded once at startup and read only after that. Order is priority: the
// first entry is the most "main" account, and transfer deduplication trusts
// earlier entries to carry the authoritative leg of a transfer.
type AccountRegistry struct {
	accounts []string
	index    map[string]int
}

// NewAccountRegistry builds a registry from an ordered account list. Entries
// are uppercased, blanks and duplicates are dropped.
func NewAccountRegistry(accounts []string) *AccountRegistry {
	r := &AccountRegistry{index: map[string]int{}}
	for _, a := range accounts {
		a = strings.ToUpper(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, ok := r.index[a]; ok {
			continue
		}
		r.index[a] = len(r.accounts)
		r.accounts = append(r.accounts, a)
	}
	return r
}

// LoadAccountRegistry reads the registry from a YAML config file holding an
// "accounts" list. A missing file is not an error, it simply yields an empty
// registry and every transaction gets emitted.
func LoadAccountRegistry(path string) (*AccountRegistry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewAccountRegistry(nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening account config")
	}
	defer f.Close()

	config := struct {
		Accounts []string `yaml:"accounts"`
	}{}
	err = yaml.NewDecoder(f).Decode(&config)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing account config")
	}
	return NewAccountRegistry(config.Accounts), nil
}

// Len returns the number of configured accounts.
func (r *AccountRegistry) Len() int {
	return len(r.accounts)
}

// Accounts returns the registry entries in priority order.
func (r *AccountRegistry) Accounts() []string {
	return slices.Clone(r.accounts)
}

// IsKnown reports whether the account is listed in the registry.
func (r *AccountRegistry) IsKnown(account string) bool {
	_, ok := r.index[strings.ToUpper(account)]
	return ok
}

// PriorAccounts returns the set of registry entries listed strictly before
// the given account. The first entry, and any account not in the registry,
// gets an empty set.
func (r *AccountRegistry) PriorAccounts(account string) map[string]bool {
	prior := map[string]bool{}
	ix, ok := r.index[strings.ToUpper(account)]
	if !ok {
		return prior
	}
	for _, a := range r.accounts[:ix] {
		prior[a] = true
	}
	return prior
}
