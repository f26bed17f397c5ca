package daftar

import (
	"slices"
	"testing"
)

func TestLedgerAccounts(t *testing.T) {
	l := NewLedger()
	l.UpsertAccount(Account{Name: "Saderat", Balance: M(10)})
	l.UpsertAccount(Account{Name: "Melli", Balance: M(20)})
	l.UpsertAccount(Account{Name: "Ayandeh", Balance: M(30)})

	var names []string
	for a := range l.Accounts() {
		names = append(names, a.Name)
	}
	want := []string{"Ayandeh", "Melli", "Saderat"}
	if !slices.Equal(names, want) {
		t.Errorf("Accounts order = %v, want %v", names, want)
	}
	if got := l.AccountNames(); !slices.Equal(got, want) {
		t.Errorf("AccountNames = %v, want %v", got, want)
	}

	// Upsert replaces in place.
	l.UpsertAccount(Account{Name: "Melli", Balance: M(99)})
	if l.NumAccounts() != 3 {
		t.Fatalf("NumAccounts = %d, want 3", l.NumAccounts())
	}
	a, ok := l.FindAccount("Melli")
	if !ok || !a.Balance.Equal(M(99)) {
		t.Errorf("FindAccount after upsert = %+v, %v", a, ok)
	}
	if _, ok := l.FindAccount("Tejarat"); ok {
		t.Error("found an account that was never inserted")
	}
}

func TestLedgerTransactions(t *testing.T) {
	l := NewLedger()
	id1 := l.AppendTransaction(Transaction{Account: "Melli", Direction: Deposit, Amount: M(100)})
	id2 := l.AppendTransaction(Transaction{Account: "Melli", Direction: Withdrawal, Amount: M(40)})
	if id1 == "" || id2 == "" || id1 == id2 {
		t.Fatalf("ids not assigned uniquely: %q, %q", id1, id2)
	}
	// Caller-supplied ids are kept.
	if got := l.AppendTransaction(Transaction{ID: "fixed", Account: "Melli", Direction: Deposit, Amount: M(1)}); got != "fixed" {
		t.Errorf("AppendTransaction kept id %q, want %q", got, "fixed")
	}

	tx, ok := l.FindTransaction(id2)
	if !ok || !tx.Amount.Equal(M(40)) {
		t.Fatalf("FindTransaction(%q) = %+v, %v", id2, tx, ok)
	}

	removed, err := l.RemoveTransaction(id1)
	if err != nil {
		t.Fatal(err)
	}
	if !removed.Amount.Equal(M(100)) {
		t.Errorf("removed %+v", removed)
	}
	if l.NumTransactions() != 2 {
		t.Errorf("NumTransactions = %d, want 2", l.NumTransactions())
	}
	if _, err := l.RemoveTransaction(id1); err != ErrTransactionNotFound {
		t.Errorf("second remove error = %v, want ErrTransactionNotFound", err)
	}
}

func TestLedgerTransactionsSeq(t *testing.T) {
	l := NewLedger()
	for i := range 5 {
		l.AppendTransaction(Transaction{Account: "Melli", Direction: Deposit, Amount: M(i + 1)})
	}

	seq := l.Transactions(func(tx Transaction) bool { return tx.Amount.GreaterThan(M(2)) })
	count := 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Errorf("filtered count = %d, want 3", count)
	}
	// The sequence restarts from scratch on every range.
	count = 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	count = 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Errorf("restarted count = %d, want 3", count)
	}

	count = 0
	for range l.Transactions(AcceptAll) {
		count++
	}
	if count != 5 {
		t.Errorf("AcceptAll count = %d, want 5", count)
	}
}
