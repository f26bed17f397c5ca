package daftar

import (
	"slices"
	"testing"

	"github.com/omidv/daftar/jalali"
)

func reportLedger() *Ledger {
	l := NewLedger()
	l.AppendTransaction(Transaction{ID: "t1", Account: "Melli", Direction: Deposit, Amount: M(1000), Date: "1403/01/05"})
	l.AppendTransaction(Transaction{ID: "t2", Account: "Melli", Direction: Withdrawal, Amount: M(300), Date: "1403/02/10"})
	l.AppendTransaction(Transaction{ID: "t3", Account: "Saderat", Direction: Deposit, Amount: M(500), Date: "1403/02/15"})
	l.AppendTransaction(Transaction{ID: "t4", Account: "Saderat", Direction: Withdrawal, Amount: M(200), Date: "yesterday"})
	return l
}

func selectIDs(l *Ledger, f Filter) []string {
	var ids []string
	for tx := range l.Select(f) {
		ids = append(ids, tx.ID)
	}
	return ids
}

func TestFilterMatch(t *testing.T) {
	l := reportLedger()
	testCases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "zero filter matches all", filter: Filter{}, want: []string{"t1", "t2", "t3", "t4"}},
		{name: "by account", filter: Filter{Account: "Melli"}, want: []string{"t1", "t2"}},
		{name: "by direction", filter: Filter{Direction: Withdrawal}, want: []string{"t2", "t4"}},
		{name: "account and direction", filter: Filter{Account: "Saderat", Direction: Deposit}, want: []string{"t3"}},
		{name: "from bound", filter: Filter{From: jalali.MustParse("1403/02/01")}, want: []string{"t2", "t3"}},
		{name: "to bound", filter: Filter{To: jalali.MustParse("1403/01/31")}, want: []string{"t1"}},
		{name: "closed range", filter: Filter{From: jalali.MustParse("1403/02/01"), To: jalali.MustParse("1403/02/12")}, want: []string{"t2"}},
		{name: "range excludes unparseable dates", filter: Filter{Account: "Saderat", From: jalali.MustParse("1403/01/01")}, want: []string{"t3"}},
		{name: "no match", filter: Filter{Account: "Tejarat"}, want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectIDs(l, tc.filter); !slices.Equal(got, tc.want) {
				t.Errorf("Select(%+v) = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	l := reportLedger()
	totals := Sum(l.Select(Filter{}))
	if !totals.Deposits.Equal(M(1500)) {
		t.Errorf("Deposits = %s, want 1,500", totals.Deposits)
	}
	if !totals.Withdrawals.Equal(M(500)) {
		t.Errorf("Withdrawals = %s, want 500", totals.Withdrawals)
	}
	if !totals.Net.Equal(M(1000)) {
		t.Errorf("Net = %s, want 1,000", totals.Net)
	}

	empty := Sum(l.Select(Filter{Account: "Tejarat"}))
	if !empty.Net.IsZero() {
		t.Errorf("empty Net = %s, want 0", empty.Net)
	}
}

func TestSumAccounts(t *testing.T) {
	l := NewLedger()
	l.UpsertAccount(Account{Name: "Melli", Balance: M(700)})
	l.UpsertAccount(Account{Name: "Saderat", Balance: M(300)})
	if got := l.SumAccounts(); !got.Equal(M(1000)) {
		t.Errorf("SumAccounts = %s, want 1,000", got)
	}
}

func TestAudit(t *testing.T) {
	l := NewLedger()
	l.UpsertAccount(Account{Name: "Melli", Opening: M(100), Balance: M(700)})
	l.AppendTransaction(Transaction{Account: "Melli", Direction: Deposit, Amount: M(600)})
	if bad := l.Audit(); len(bad) != 0 {
		t.Fatalf("Audit = %v, want clean", bad)
	}

	// A balance tampered with outside the book shows up in the audit.
	l.UpsertAccount(Account{Name: "Melli", Opening: M(100), Balance: M(999)})
	if bad := l.Audit(); !slices.Equal(bad, []string{"Melli"}) {
		t.Errorf("Audit = %v, want [Melli]", bad)
	}
}
