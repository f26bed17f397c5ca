package daftar

import (
	"errors"
	"testing"
)

// newTestBook returns a book with persistence disabled.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	return NewBook(NewLedger(), nil)
}

func mustOpen(t *testing.T, b *Book, name string, initial Money) {
	t.Helper()
	if err := b.OpenAccount(name, initial); err != nil {
		t.Fatalf("OpenAccount(%q, %s): %v", name, initial, err)
	}
}

func mustRecord(t *testing.T, b *Book, tx Transaction) string {
	t.Helper()
	id, err := b.Record(tx)
	if err != nil {
		t.Fatalf("Record(%+v): %v", tx, err)
	}
	return id
}

func checkBalance(t *testing.T, b *Book, name string, want Money) {
	t.Helper()
	got, err := b.AccountTotal(name)
	if err != nil {
		t.Fatalf("AccountTotal(%q): %v", name, err)
	}
	if !got.Equal(want) {
		t.Errorf("balance of %q = %s, want %s", name, got, want)
	}
}

func TestOpenAccount(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))
	checkBalance(t, b, "Bank A", M(1000))

	if err := b.OpenAccount("Bank A", M(0)); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("duplicate open error = %v, want ErrDuplicateAccount", err)
	}
	if err := b.OpenAccount("Bank B", M(100).Neg()); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative initial error = %v, want ErrInvalidAmount", err)
	}
	if err := b.OpenAccount("  ", M(0)); err == nil {
		t.Error("blank account name accepted")
	}
	// Zero initial balance is fine.
	mustOpen(t, b, "Bank C", M(0))
	checkBalance(t, b, "Bank C", M(0))
}

func TestRecordDeposit(t *testing.T) {
	// Scenario: open with 1000, deposit 500, balance is 1500.
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))
	id := mustRecord(t, b, Transaction{Account: "Bank A", Direction: Deposit, Amount: M(500)})
	checkBalance(t, b, "Bank A", M(1500))

	tx, ok := b.Ledger().FindTransaction(id)
	if !ok {
		t.Fatalf("transaction %q not stored", id)
	}
	if tx.Date == "" {
		t.Error("date not defaulted to today")
	}
}

func TestRecordInsufficientFunds(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))
	mustRecord(t, b, Transaction{Account: "Bank A", Direction: Deposit, Amount: M(500)})

	_, err := b.Record(Transaction{Account: "Bank A", Direction: Withdrawal, Amount: M(2000)})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("error = %v, want ErrInsufficientFunds", err)
	}
	// A rejected transaction leaves no trace.
	checkBalance(t, b, "Bank A", M(1500))
	if n := b.Ledger().NumTransactions(); n != 1 {
		t.Errorf("NumTransactions = %d, want 1", n)
	}
}

func TestWithdrawalBoundary(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1500))

	// Withdrawing the full balance succeeds and leaves zero.
	mustRecord(t, b, Transaction{Account: "Bank A", Direction: Withdrawal, Amount: M(1500)})
	checkBalance(t, b, "Bank A", M(0))

	// One more unit fails and changes nothing.
	_, err := b.Record(Transaction{Account: "Bank A", Direction: Withdrawal, Amount: M(1)})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("error = %v, want ErrInsufficientFunds", err)
	}
	checkBalance(t, b, "Bank A", M(0))
}

func TestRecordUnknownAccount(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))

	_, err := b.Record(Transaction{Account: "Bank X", Direction: Deposit, Amount: M(10)})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("error = %v, want ErrAccountNotFound", err)
	}
	if n := b.Ledger().NumTransactions(); n != 0 {
		t.Errorf("NumTransactions = %d, want 0", n)
	}
}

func TestRecordValidation(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))

	if _, err := b.Record(Transaction{Account: "Bank A", Direction: Deposit, Amount: M(0)}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount error = %v, want ErrInvalidAmount", err)
	}
	if _, err := b.Record(Transaction{Account: "Bank A", Direction: "transfer", Amount: M(10)}); err == nil {
		t.Error("unknown direction accepted")
	}
	checkBalance(t, b, "Bank A", M(1000))
}

func TestDeleteRestoresBalance(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(1000))
	t1 := mustRecord(t, b, Transaction{Account: "Bank A", Direction: Deposit, Amount: M(500)})
	checkBalance(t, b, "Bank A", M(1500))

	if err := b.Delete(t1); err != nil {
		t.Fatal(err)
	}
	checkBalance(t, b, "Bank A", M(1000))
	if _, ok := b.Ledger().FindTransaction(t1); ok {
		t.Error("deleted transaction still stored")
	}

	if err := b.Delete(t1); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("double delete error = %v, want ErrTransactionNotFound", err)
	}
}

// Reversal is applied unconditionally: deleting a deposit whose funds have
// already left the account drives the balance negative, and the audit still
// comes out clean.
func TestDeleteDepositCanGoNegative(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Bank A", M(0))
	dep := mustRecord(t, b, Transaction{Account: "Bank A", Direction: Deposit, Amount: M(1000)})
	mustRecord(t, b, Transaction{Account: "Bank A", Direction: Withdrawal, Amount: M(800)})
	checkBalance(t, b, "Bank A", M(200))

	if err := b.Delete(dep); err != nil {
		t.Fatal(err)
	}
	checkBalance(t, b, "Bank A", M(800).Neg())
	if bad := b.Ledger().Audit(); len(bad) != 0 {
		t.Errorf("Audit = %v, want clean", bad)
	}
}

// The balance invariant holds after an arbitrary mix of applies and reversals.
func TestBalanceInvariant(t *testing.T) {
	b := newTestBook(t)
	mustOpen(t, b, "Melli", M(1000))
	mustOpen(t, b, "Saderat", M(0))

	var ids []string
	steps := []Transaction{
		{Account: "Melli", Direction: Deposit, Amount: M(2500)},
		{Account: "Saderat", Direction: Deposit, Amount: M(700)},
		{Account: "Melli", Direction: Withdrawal, Amount: M(1200)},
		{Account: "Saderat", Direction: Withdrawal, Amount: M(700)},
		{Account: "Melli", Direction: Deposit, Amount: M(50)},
	}
	for _, tx := range steps {
		ids = append(ids, mustRecord(t, b, tx))
	}
	if err := b.Delete(ids[2]); err != nil {
		t.Fatal(err)
	}
	if err := b.Delete(ids[1]); err != nil {
		t.Fatal(err)
	}

	checkBalance(t, b, "Melli", M(1000+2500+50))
	checkBalance(t, b, "Saderat", M(0).Sub(M(700)))
	if bad := b.Ledger().Audit(); len(bad) != 0 {
		t.Errorf("Audit = %v, want clean", bad)
	}
}

// failStore fails every save after the first n calls.
type failStore struct{ calls, allow int }

func (s *failStore) SaveAccounts(*Ledger) error     { return s.fail() }
func (s *failStore) SaveTransactions(*Ledger) error { return s.fail() }

func (s *failStore) fail() error {
	s.calls++
	if s.calls > s.allow {
		return errors.New("disk full")
	}
	return nil
}

func TestPersistenceFailure(t *testing.T) {
	store := &failStore{allow: 2}
	b := NewBook(NewLedger(), store)
	mustOpen(t, b, "Bank A", M(1000)) // consumes the two allowed saves

	id, err := b.Record(Transaction{Account: "Bank A", Direction: Deposit, Amount: M(500)})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("error = %v, want ErrPersistence", err)
	}
	// Memory stays authoritative: the mutation went through.
	if id == "" {
		t.Error("no id returned alongside persistence error")
	}
	checkBalance(t, b, "Bank A", M(1500))
}
