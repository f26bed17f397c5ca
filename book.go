package daftar

import (
	"fmt"
	"strings"

	"github.com/omidv/daftar/jalali"
)

// Store is the persistence collaborator: an opaque snapshot writer for the
// two ledger tables. The book never inspects what the store does with them.
type Store interface {
	SaveAccounts(*Ledger) error
	SaveTransactions(*Ledger) error
}

// Book is the balance engine. It owns the ledger for a session and is the
// only mutator of account balances, which is what keeps every balance equal
// to the signed sum of its account's stored transactions.
//
// The book assumes exclusive, serialized access within one session: apply
// and reverse each run to completion before the next operation is accepted.
// Embedding it in a multi-client service requires a mutual-exclusion
// boundary around each operation, since read-validate-write on a balance
// must be observed atomically.
type Book struct {
	ledger *Ledger
	store  Store
}

// NewBook creates a book over a ledger. A nil store disables persistence,
// which is what tests want.
func NewBook(ledger *Ledger, store Store) *Book {
	return &Book{ledger: ledger, store: store}
}

// Ledger exposes the underlying store for the read-side query layer.
func (b *Book) Ledger() *Ledger { return b.ledger }

// OpenAccount creates a new account with an initial balance. The initial
// balance may be zero but not negative. Accounts are never closed.
func (b *Book) OpenAccount(name string, initial Money) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty account name")
	}
	if initial.IsNegative() {
		return fmt.Errorf("%w: initial balance %s is negative", ErrInvalidAmount, initial)
	}
	if _, ok := b.ledger.FindAccount(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, name)
	}
	b.ledger.UpsertAccount(Account{Name: name, Opening: initial, Balance: initial})
	return b.persist()
}

// Record validates and applies a candidate transaction, returning the id of
// the stored record. All validation happens before any mutation, so a
// rejected transaction leaves no trace.
func (b *Book) Record(tx Transaction) (string, error) {
	if !tx.Amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be > 0", ErrInvalidAmount)
	}
	if tx.Direction != Deposit && tx.Direction != Withdrawal {
		return "", fmt.Errorf("unknown direction %q", tx.Direction)
	}
	account, ok := b.ledger.FindAccount(tx.Account)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrAccountNotFound, tx.Account)
	}

	candidate := account.Balance.Add(tx.Delta())
	if tx.Direction == Withdrawal && candidate.IsNegative() {
		return "", fmt.Errorf("%w: balance %s, withdrawal %s", ErrInsufficientFunds, account.Balance, tx.Amount)
	}

	// The date is a display field: default it to today, keep whatever the
	// caller entered otherwise, parseable or not.
	if tx.Date == "" {
		tx.Date = jalali.Today().String()
	}

	account.Balance = candidate
	b.ledger.UpsertAccount(account)
	id := b.ledger.AppendTransaction(tx)
	return id, b.persist()
}

// Delete reverses and removes a stored transaction. The inverse delta is
// applied unconditionally: deleting a deposit whose funds were withdrawn
// since can legitimately drive the balance negative. The stored record is
// trusted because transactions are immutable after creation.
func (b *Book) Delete(id string) error {
	tx, ok := b.ledger.FindTransaction(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
	}

	if account, ok := b.ledger.FindAccount(tx.Account); ok {
		account.Balance = account.Balance.Add(tx.Inverse())
		b.ledger.UpsertAccount(account)
	}
	if _, err := b.ledger.RemoveTransaction(id); err != nil {
		return err
	}
	return b.persist()
}

// AccountTotal returns the current balance of the named account.
func (b *Book) AccountTotal(name string) (Money, error) {
	account, ok := b.ledger.FindAccount(name)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	return account.Balance, nil
}

// persist flushes both tables through the store. A failure here, after an
// in-memory mutation, is the one inconsistency window in the design: memory
// stays authoritative and the error is surfaced for the operator to re-run
// the save. No silent retry.
func (b *Book) persist() error {
	if b.store == nil {
		return nil
	}
	if err := b.store.SaveAccounts(b.ledger); err != nil {
		return fmt.Errorf("%w: accounts: %v", ErrPersistence, err)
	}
	if err := b.store.SaveTransactions(b.ledger); err != nil {
		return fmt.Errorf("%w: transactions: %v", ErrPersistence, err)
	}
	return nil
}
