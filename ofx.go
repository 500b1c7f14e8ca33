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
	"text/template"
	"time"
)

// The literal OFX 1.x blocks the downstream importers have been fed for
// years. Field order, indentation, and the surrounding boilerplate are the
// contract with the importer, so the text is kept byte for byte. Values are
// emitted unescaped, the normalizer already did the (legacy) escaping.

var headerTmpl = template.Must(template.New("header").Parse(`
<OFX>
   <SIGNONMSGSRSV1>
      <SONRS>                            <!-- Begin signon -->
         <STATUS>                        <!-- Begin status aggregate -->
            <CODE>0</CODE>               <!-- OK -->
            <SEVERITY>INFO</SEVERITY>
         </STATUS>
         <DTSERVER>{{.Nowdate}}</DTSERVER>   <!-- Oct. 29, 1999, 10:10:03 am -->
         <LANGUAGE>ENG</LANGUAGE>        <!-- Language used in response -->
         <DTPROFUP>{{.Nowdate}}</DTPROFUP>   <!-- Last update to profile-->
         <DTACCTUP>{{.Nowdate}}</DTACCTUP>   <!-- Last account update -->
         <FI>                            <!-- ID of receiving institution -->
            <ORG>NCH</ORG>               <!-- Name of ID owner -->
            <FID>1001</FID>              <!-- Actual ID -->
         </FI>
      </SONRS>                           <!-- End of signon -->
   </SIGNONMSGSRSV1>
   <BANKMSGSRSV1>
      <STMTTRNRS>                        <!-- Begin response -->
         <TRNUID>1001</TRNUID>           <!-- Client ID sent in request -->
         <STATUS>                     <!-- Start status aggregate -->
            <CODE>0</CODE>            <!-- OK -->
            <SEVERITY>INFO</SEVERITY>
         </STATUS>`))

var statementOpenTmpl = template.Must(template.New("statementOpen").Parse(`
        <STMTRS>                         <!-- Begin statement response -->
           <CURDEF>EUR</CURDEF>
           <BANKACCTFROM>                <!-- Identify the account -->
              <BANKID>RABONL2U</BANKID> <!-- Routing transit or other FI ID -->
              <ACCTID>{{.Account}}</ACCTID> <!-- Account number -->
              <ACCTTYPE>CHECKING</ACCTTYPE><!-- Account type -->
           </BANKACCTFROM>               <!-- End of account ID -->
           <BANKTRANLIST>                <!-- Begin list of statement trans. -->
              <DTSTART>{{.DateStart}}</DTSTART>
              <DTEND>{{.DateEnd}}</DTEND>`))

var transactionTmpl = template.Must(template.New("transaction").Parse(`
                  <STMTTRN>
                     <TRNTYPE>{{.Type}}</TRNTYPE>
                     <DTPOSTED>{{.DatePosted}}</DTPOSTED>
                     <TRNAMT>{{.Amount}}</TRNAMT>
                     <FITID>{{.FITID}}</FITID>
                     <NAME>{{.Name}}</NAME>
                     <BANKACCTTO>
                        <BANKID></BANKID>
                        <ACCTID>{{.CounterAccount}}</ACCTID>
                        <ACCTTYPE>CHECKING</ACCTTYPE>
                     </BANKACCTTO>
                     <MEMO>{{.Memo}}</MEMO>
                  </STMTTRN>`))

const statementClose = `
              </BANKTRANLIST>                   <!-- End list of statement                       trans. -->
              <LEDGERBAL>                       <!-- Ledger balance                   aggregate -->
               <BALAMT>0</BALAMT>
               <DTASOF>199910291120</DTASOF><!-- Bal date: 10/29/99,                    11:20 am -->
            </LEDGERBAL>                      <!-- End ledger balance -->
         </STMTRS>`

const documentFooter = `
      </STMTTRNRS>                        <!-- End of transaction -->
   </BANKMSGSRSV1>
</OFX>
      `

// DocumentWriter emits one OFX document to W. Now, when set, replaces the
// wall clock for the server date stamps in the header.
type DocumentWriter struct {
	W   io.Writer
	Now func() time.Time
}

func (dw *DocumentWriter) nowdate() string {
	now := time.Now
	if dw.Now != nil {
		now = dw.Now
	}
	return now().Format("20060102")
}

// WriteDocument writes the complete document: header, then per statement an
// open block, its transactions, and a close block, then the footer.
func (dw *DocumentWriter) WriteDocument(stmts []Statement) error {
	if err := dw.WriteHeader(); err != nil {
		return err
	}
	for _, st := range stmts {
		if err := dw.WriteStatementOpen(st); err != nil {
			return err
		}
		for _, tr := range st.Transactions {
			if err := dw.WriteTransaction(tr); err != nil {
				return err
			}
		}
		if err := dw.WriteStatementClose(); err != nil {
			return err
		}
	}
	return dw.WriteFooter()
}

func (dw *DocumentWriter) WriteHeader() error {
	return headerTmpl.Execute(dw.W, struct{ Nowdate string }{dw.nowdate()})
}

func (dw *DocumentWriter) WriteStatementOpen(st Statement) error {
	return statementOpenTmpl.Execute(dw.W, st)
}

func (dw *DocumentWriter) WriteTransaction(tr Transaction) error {
	return transactionTmpl.Execute(dw.W, tr)
}

func (dw *DocumentWriter) WriteStatementClose() error {
	_, err := io.WriteString(dw.W, statementClose)
	return err
}

func (dw *DocumentWriter) WriteFooter() error {
	_, err := io.WriteString(dw.W, documentFooter)
	return err
}
