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
	"flag"
	"fmt"
	"os"

	"github.com/aclindsa/ofxgo"

	"github.com/milochristiansen/rabo2ofx/tools"
)

var usage string = `Usage: ofxstat <ofxfile>

Prints per account transaction counts and date ranges for an OFX file.
Handy for eyeballing what a converted statement will import.
`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
	}
	flag.Parse()

	path := flag.Arg(0)
	tools.HandleErrS(path == "", "No input file given.")

	f := tools.HandleErrV(os.Open(path))
	defer f.Close()

	resp := tools.HandleErrV(ofxgo.ParseResponse(f))

	tools.HandleErrS(len(resp.Bank) == 0 && len(resp.CreditCard) == 0,
		"No bank or credit card statements in file.")

	for _, msg := range append(resp.Bank, resp.CreditCard...) {
		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			count := 0
			span := ""
			if stmt.BankTranList != nil {
				count = len(stmt.BankTranList.Transactions)
				span = fmt.Sprintf(" (%v - %v)", stmt.BankTranList.DtStart, stmt.BankTranList.DtEnd)
			}
			fmt.Printf("%v: %v transactions%v\n", stmt.BankAcctFrom.AcctID, count, span)
		case *ofxgo.CCStatementResponse:
			count := 0
			if stmt.BankTranList != nil {
				count = len(stmt.BankTranList.Transactions)
			}
			fmt.Printf("%v: %v transactions\n", stmt.CCAcctFrom.AcctID, count)
		default:
			tools.HandleErrS(true, "Unexpected response type.")
		}
	}
}
