package daftar

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Account is one bank account: a unique case-sensitive name, the balance it
// was opened with, and its running balance. The balance is only ever mutated
// through the book, which keeps it equal to the opening balance plus the
// signed sum of the account's stored transactions.
type Account struct {
	Name    string
	Opening Money
	Balance Money
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Optional("opening", a.Opening)
	w.Append("balance", a.Balance)
	return w.MarshalJSON()
}

// Ledger holds the authoritative in-memory account and transaction tables
// for the lifetime of a session. It is a plain store: nothing here enforces
// the balance invariant, that is the book's job.
type Ledger struct {
	accounts     map[string]Account
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]Account)}
}

// FindAccount returns the account with the given name.
func (l *Ledger) FindAccount(name string) (Account, bool) {
	a, ok := l.accounts[name]
	return a, ok
}

// UpsertAccount inserts or replaces the account under its name.
func (l *Ledger) UpsertAccount(a Account) {
	l.accounts[a.Name] = a
}

// Accounts iterates over all accounts in name order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	names := slices.Sorted(maps.Keys(l.accounts))
	return func(yield func(Account) bool) {
		for _, name := range names {
			if !yield(l.accounts[name]) {
				return
			}
		}
	}
}

// AppendTransaction appends a transaction record and returns its id,
// assigning a fresh one if the record carries none.
func (l *Ledger) AppendTransaction(tx Transaction) string {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	l.transactions = append(l.transactions, tx)
	return tx.ID
}

// FindTransaction returns the stored transaction with the given id.
func (l *Ledger) FindTransaction(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// RemoveTransaction removes the transaction with the given id and returns
// it, or ErrTransactionNotFound.
func (l *Ledger) RemoveTransaction(id string) (Transaction, error) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return tx, nil
		}
	}
	return Transaction{}, ErrTransactionNotFound
}

// AcceptAll is a predicate that matches every transaction.
func AcceptAll(Transaction) bool { return true }

// Transactions iterates over stored transactions matching the predicate, in
// insertion order. The sequence is lazy and restartable.
func (l *Ledger) Transactions(accept func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if accept(tx) && !yield(tx) {
				return
			}
		}
	}
}

// NumTransactions returns the number of stored transactions.
func (l *Ledger) NumTransactions() int { return len(l.transactions) }

// NumAccounts returns the number of accounts.
func (l *Ledger) NumAccounts() int { return len(l.accounts) }

// AccountNames returns all account names sorted, for prompts and listings.
func (l *Ledger) AccountNames() []string {
	return slices.Sorted(maps.Keys(l.accounts))
}
