package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/omidv/daftar"
)

// Transaction renders a one-line summary of a transaction.
func Transaction(tx daftar.Transaction) string {
	switch tx.Direction {
	case daftar.Deposit:
		return fmt.Sprintf("Deposited %s to %s on %s", tx.Amount, tx.Account, tx.Date)
	case daftar.Withdrawal:
		return fmt.Sprintf("Withdrew %s from %s on %s", tx.Amount, tx.Account, tx.Date)
	default:
		return string(tx.Direction)
	}
}

// TransactionsMarkdown renders a transaction listing with its totals.
func TransactionsMarkdown(transactions []daftar.Transaction, totals daftar.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(transactions) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.ID,
			tx.Account,
			string(tx.Direction),
			tx.Amount.String(),
			tx.Date,
			tx.Memo,
			tx.Counterparty,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Account", "Direction", "Amount (Rial)", "Date", "Memo", "Counterparty"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Deposits: %s | Withdrawals: %s | Net: %s",
		totals.Deposits, totals.Withdrawals, totals.Net.SignedString()))

	return doc.String()
}
