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
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryNormalization(t *testing.T) {
	r := NewAccountRegistry([]string{" nl11rabo0101010101 ", "NL22RABO0202020202", "nl11rabo0101010101", ""})

	if r.Len() != 2 {
		t.Fatalf("Incorrect registry length: %v", r.Len())
	}
	if !r.IsKnown("NL11RABO0101010101") || !r.IsKnown("nl22rabo0202020202") {
		t.Errorf("Registry entries not found case-insensitively.")
	}
	if r.IsKnown("NL99BANK0999999999") {
		t.Errorf("Unlisted account reported as known.")
	}

	accounts := r.Accounts()
	if accounts[0] != "NL11RABO0101010101" || accounts[1] != "NL22RABO0202020202" {
		t.Errorf("Registry order not preserved: %v", accounts)
	}
}

func TestPriorAccounts(t *testing.T) {
	r := NewAccountRegistry([]string{"A1", "B2", "C3"})

	if len(r.PriorAccounts("A1")) != 0 {
		t.Errorf("First entry has prior accounts.")
	}

	prior := r.PriorAccounts("b2")
	if len(prior) != 1 || !prior["A1"] {
		t.Errorf("Incorrect prior set for B2: %v", prior)
	}

	prior = r.PriorAccounts("C3")
	if len(prior) != 2 || !prior["A1"] || !prior["B2"] {
		t.Errorf("Incorrect prior set for C3: %v", prior)
	}

	if len(r.PriorAccounts("NOPE")) != 0 {
		t.Errorf("Unknown account has prior accounts.")
	}
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "rabo2ofx.yaml")
	content := "accounts:\n  - nl11rabo0101010101\n  - NL22RABO0202020202\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}

	r, err := LoadAccountRegistry(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("Incorrect registry length: %v", r.Len())
	}
	if r.Accounts()[0] != "NL11RABO0101010101" {
		t.Errorf("Incorrect first entry: %v", r.Accounts()[0])
	}
}

// A missing config file is the default state, not an error.
func TestLoadRegistryAbsent(t *testing.T) {
	r, err := LoadAccountRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Missing config did not yield an empty registry: %v", r.Accounts())
	}
}

func TestLoadRegistryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rabo2ofx.yaml")
	if err := os.WriteFile(path, nil, 0666); err != nil {
		t.Fatal(err)
	}

	r, err := LoadAccountRegistry(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Empty config did not yield an empty registry: %v", r.Accounts())
	}
}
