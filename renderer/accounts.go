// Package renderer turns book values into markdown for the terminal.
// Everything here is a pure function from domain values to text.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/omidv/daftar"
)

// AccountsMarkdown renders the account table with its grand total.
func AccountsMarkdown(accounts []daftar.Account, total daftar.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.Name, a.Balance.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Balance (Rial)"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total balance: %s Rial", total))

	return doc.String()
}
