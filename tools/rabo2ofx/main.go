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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/milochristiansen/rabo2ofx"
	"github.com/milochristiansen/rabo2ofx/tools"
)

var usage string = `Usage: rabo2ofx [options] <csvfile>

Converts a Rabobank CSV download (www.rabobank.nl) into an OFX 1.x file for
GnuCash and other personal finance software.

Transfers between your own accounts appear once under each account in the
download, which double books the money movement on import. List your account
numbers, most important first, in the config file:

	accounts:
	  - NL11RABO0101010101
	  - NL22RABO0202020202

and the duplicate leg of each transfer is skipped. Without a config file
every transaction is written as-is.

Note: "&" in memos is written as "&amp" without the closing semicolon. That
is what the long standing consumers of these files accept, so it stays until
an explicit compatibility break.
`

const version = "2.0"

// What changed when, in the tradition of the original script.
var history = map[string][2]string{
	"1.0":  {"2015-12-30", "Initial version"},
	"1.01": {"2015-12-30", "Correction for description of db: add space between name and description."},
	"1.02": {"2016-01-02", "Added sequence to fitid for same amount, same date."},
	"2.0":  {"2023-04-18", "26 column layout, account registry, transfer deduplication."},
}

func main() {
	fs := tools.ConverterFlagSet(usage)
	fs.Parse()

	if fs.Version {
		h := history[version]
		fmt.Printf("rabo2ofx version %v (%v: %v)\n", version, h[0], h[1])
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if fs.Quiet {
		log = log.Level(zerolog.ErrorLevel)
	}

	csvPath := fs.Flags.Arg(0)
	tools.HandleErrS(csvPath == "", "No input file given.")

	layout := rabo2ofx.Layout2018
	switch fs.Layout {
	case "2018":
	case "legacy":
		layout = rabo2ofx.LayoutLegacy
	default:
		tools.HandleErrS(true, "Unknown layout: "+fs.Layout)
	}

	registry := tools.LoadRegistry(fs.Config)

	in := tools.HandleErrV(os.Open(csvPath))
	defer in.Close()

	res, err := rabo2ofx.Convert(in, rabo2ofx.Config{
		Layout:      layout,
		DotDecimals: fs.Convert,
		Registry:    registry,
		Log:         log,
	})
	tools.HandleErr(err)

	tools.HandleErr(tools.EnsureDir(fs.Dir))
	outPath := tools.OutputPath(fs.Dir, csvPath, fs.OutFile)
	tools.HandleErr(tools.WriteDocumentFile(outPath, res.Statements))

	fmt.Printf("TRANSACTIONS: %v\n", res.Total)
	fmt.Printf("IN:           %v\n", csvPath)
	fmt.Printf("OUT:          %v\n", outPath)
	for _, st := range res.Statements {
		s := res.Stats[st.Account]
		fmt.Printf("%v: %v written, %v skipped as transfer, net %v\n",
			st.Account, s.Emitted, s.Skipped, s.Net.StringFixed(2))
	}

	if res.AccountOverflow(registry) {
		color.Yellow("Found %v accounts in the input but only %v configured. Transfer suppression may be incomplete.",
			len(res.Statements), registry.Len())
	}
}
