package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/omidv/daftar"
)

// ChecksMarkdown renders the check registry.
func ChecksMarkdown(checks []daftar.Check) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Checks")
	if len(checks) == 0 {
		doc.PlainText("No checks registered.")
		return doc.String()
	}

	rows := make([][]string, 0, len(checks))
	for _, ck := range checks {
		rows = append(rows, []string{
			ck.ID, string(ck.Kind), ck.Number, ck.DueDate, ck.Owner, ck.Amount.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Kind", "Number", "Due", "Owner", "Amount (Rial)"},
		Rows:   rows,
	})

	return doc.String()
}

// DebtsMarkdown renders the receivable/payable registry.
func DebtsMarkdown(debts []daftar.Debt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debts and Credits")
	if len(debts) == 0 {
		doc.PlainText("No debt records.")
		return doc.String()
	}

	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, []string{
			d.ID, string(d.Kind), d.Name, d.Amount.String(), d.DueDate, d.Registered,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Kind", "Name", "Amount (Rial)", "Due", "Registered"},
		Rows:   rows,
	})

	return doc.String()
}

// LinesMarkdown renders the phone-number inventory.
func LinesMarkdown(lines []daftar.Line) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Phone Lines")
	if len(lines) == 0 {
		doc.PlainText("No phone lines in inventory.")
		return doc.String()
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			line.ID, line.Number, line.Price.String(), string(line.Status), line.Registered,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Number", "Price (Rial)", "Status", "Registered"},
		Rows:   rows,
	})

	return doc.String()
}

// PartnersMarkdown renders the partner roster.
func PartnersMarkdown(partners []daftar.Partner) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Partners")
	if len(partners) == 0 {
		doc.PlainText("No partners registered.")
		return doc.String()
	}

	rows := make([][]string, 0, len(partners))
	for _, p := range partners {
		rows = append(rows, []string{p.ID, p.Name, p.Contact, p.Share})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Contact", "Share"},
		Rows:   rows,
	})

	return doc.String()
}
