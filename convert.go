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

	"github.com/rs/zerolog"
)

// Config carries the knobs for one conversion run.
type Config struct {
	Layout      Layout
	DotDecimals bool             // Swap the decimal comma for a dot in amounts.
	Registry    *AccountRegistry // nil for no transfer suppression.
	Log         zerolog.Logger
}

// Result is everything a caller needs to write the document and report on
// the run.
type Result struct {
	Statements []Statement
	Stats      map[string]*Stats
	Total      int // Transactions read from the input.
}

// Convert runs the whole pipeline over one input: decode rows, normalize
// them into canonical transactions, then assemble per account statements
// with duplicate transfer legs removed. The run is all or nothing, any
// malformed row fails the whole conversion.
func Convert(r io.Reader, cfg Config) (*Result, error) {
	reader := NewRecordReader(r, cfg.Layout)
	norm := NewNormalizer(cfg.Layout, cfg.DotDecimals, cfg.Log)

	trs := []Transaction{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		tr, err := norm.Normalize(rec)
		if err != nil {
			if _, ok := err.(UnknownBookCodeError); ok {
				return nil, err
			}
			return nil, MalformedRecordError{reader.Line(), err}
		}
		trs = append(trs, tr)
	}

	stmts, stats := NewAssembler(cfg.Registry).Assemble(trs)

	cfg.Log.Debug().
		Int("transactions", len(trs)).
		Int("accounts", len(stmts)).
		Str("layout", cfg.Layout.String()).
		Msg("Input normalized")

	return &Result{Statements: stmts, Stats: stats, Total: len(trs)}, nil
}

// AccountOverflow reports whether more accounts were seen in the input than
// the registry lists. That is a warning condition, not an error: the run
// completed, but transfer suppression may have missed some legs.
func (res *Result) AccountOverflow(registry *AccountRegistry) bool {
	return registry != nil && registry.Len() > 0 && len(res.Statements) > registry.Len()
}
