package daftar

import (
	"iter"

	"github.com/omidv/daftar/jalali"
)

// The query layer is the pure read side of the book: filtered views over the
// transaction table plus aggregate sums. Nothing here mutates state, and
// nothing here re-validates the balance invariant; that is assumed to hold
// from the book's discipline (and can be checked offline with Audit).

// Filter selects transactions by account, direction, and Jalali date range.
// The zero Filter matches everything.
type Filter struct {
	Account   string      // empty matches all accounts
	Direction Direction   // empty matches both directions
	From, To  jalali.Date // zero dates leave the range open
}

// Match reports whether the transaction passes the filter. Transactions
// whose display date does not parse are excluded only when a date bound is
// actually set.
func (f Filter) Match(tx Transaction) bool {
	if f.Account != "" && tx.Account != f.Account {
		return false
	}
	if f.Direction != "" && tx.Direction != f.Direction {
		return false
	}
	if f.From.IsZero() && f.To.IsZero() {
		return true
	}
	day, err := jalali.Parse(tx.Date)
	if err != nil {
		return false
	}
	if !f.From.IsZero() && day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && day.After(f.To) {
		return false
	}
	return true
}

// Select returns a lazy view of the transactions matching the filter.
func (l *Ledger) Select(f Filter) iter.Seq[Transaction] {
	return l.Transactions(f.Match)
}

// Totals aggregates a view of transactions.
type Totals struct {
	Deposits    Money // sum of deposit amounts
	Withdrawals Money // sum of withdrawal amounts
	Net         Money // Deposits - Withdrawals
}

// Sum consumes a transaction view and returns its totals.
func Sum(transactions iter.Seq[Transaction]) Totals {
	var t Totals
	for tx := range transactions {
		switch tx.Direction {
		case Deposit:
			t.Deposits = t.Deposits.Add(tx.Amount)
		case Withdrawal:
			t.Withdrawals = t.Withdrawals.Add(tx.Amount)
		}
	}
	t.Net = t.Deposits.Sub(t.Withdrawals)
	return t
}

// SumAccounts returns the grand total of all account balances.
func (l *Ledger) SumAccounts() Money {
	var total Money
	for a := range l.Accounts() {
		total = total.Add(a.Balance)
	}
	return total
}

// Audit re-derives every balance as opening plus the signed sum of the
// account's transactions, and returns the names of accounts whose stored
// balance disagrees. An empty result means the ledger is internally
// consistent.
func (l *Ledger) Audit() []string {
	derived := make(map[string]Money)
	for tx := range l.Transactions(AcceptAll) {
		derived[tx.Account] = derived[tx.Account].Add(tx.Delta())
	}
	var bad []string
	for a := range l.Accounts() {
		if !a.Balance.Equal(a.Opening.Add(derived[a.Name])) {
			bad = append(bad, a.Name)
		}
	}
	return bad
}
