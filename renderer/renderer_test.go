package renderer

import (
	"strings"
	"testing"

	"github.com/omidv/daftar"
)

func TestAccountsMarkdown(t *testing.T) {
	accounts := []daftar.Account{
		{Name: "Melli", Balance: daftar.M(1500000)},
		{Name: "Saderat", Balance: daftar.M(500)},
	}
	out := AccountsMarkdown(accounts, daftar.M(1500500))
	for _, want := range []string{"# Accounts", "Melli", "1,500,000", "Total balance: 1,500,500 Rial"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	empty := AccountsMarkdown(nil, daftar.M(0))
	if !strings.Contains(empty, "No accounts yet.") {
		t.Errorf("empty output = %s", empty)
	}
}

func TestTransactionLine(t *testing.T) {
	dep := daftar.Transaction{Account: "Melli", Direction: daftar.Deposit, Amount: daftar.M(500), Date: "1403/01/01"}
	if got := Transaction(dep); got != "Deposited 500 to Melli on 1403/01/01" {
		t.Errorf("deposit line = %q", got)
	}
	wd := daftar.Transaction{Account: "Melli", Direction: daftar.Withdrawal, Amount: daftar.M(200), Date: "1403/01/02"}
	if got := Transaction(wd); got != "Withdrew 200 from Melli on 1403/01/02" {
		t.Errorf("withdrawal line = %q", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	transactions := []daftar.Transaction{
		{ID: "t1", Account: "Melli", Direction: daftar.Deposit, Amount: daftar.M(1000), Date: "1403/01/01", Memo: "sale"},
	}
	totals := daftar.Totals{Deposits: daftar.M(1000), Net: daftar.M(1000)}
	out := TransactionsMarkdown(transactions, totals)
	for _, want := range []string{"# Transactions", "t1", "deposit", "1,000", "sale", "Net: +1,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
