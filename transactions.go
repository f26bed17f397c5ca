package daftar

import (
	"encoding/json"
	"fmt"
)

// Direction is a typed string identifying the effect of a transaction on a
// balance.
type Direction string

const (
	// Deposit adds the amount to the account balance.
	Deposit Direction = "deposit"
	// Withdrawal subtracts the amount from the account balance.
	Withdrawal Direction = "withdrawal"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "deposit", "in":
		return Deposit, nil
	case "withdrawal", "withdraw", "out":
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown direction %q: want deposit or withdrawal", s)
	}
}

// Transaction is one recorded cash movement. Transactions are immutable:
// they are created by the book and deleted by the book, never edited in
// place. That immutability is what makes O(1) reversal safe.
type Transaction struct {
	ID           string    // assigned by the ledger on append
	Account      string    // account name, case-sensitive
	Direction    Direction // deposit or withdrawal
	Amount       Money     // strictly positive at creation time
	Date         string    // Jalali display date, best-effort normalized
	Memo         string    // optional reason for the movement
	Counterparty string    // optional person or company
	Receipt      string    // optional attachment reference
}

// Delta returns the signed effect of the transaction on its account balance:
// +Amount for a deposit, -Amount for a withdrawal.
func (t Transaction) Delta() Money {
	if t.Direction == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Inverse returns the exact negation of Delta. Applying it undoes the
// transaction's balance effect regardless of what happened since.
func (t Transaction) Inverse() Money { return t.Delta().Neg() }

// MarshalJSON implements the json.Marshaler interface with a stable field
// order, so snapshot diffs stay readable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("account", t.Account)
	w.Append("direction", t.Direction)
	w.Append("amount", t.Amount)
	w.Optional("date", t.Date)
	w.Optional("memo", t.Memo)
	w.Optional("counterparty", t.Counterparty)
	w.Optional("receipt", t.Receipt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           string    `json:"id"`
		Account      string    `json:"account"`
		Direction    Direction `json:"direction"`
		Amount       Money     `json:"amount"`
		Date         string    `json:"date"`
		Memo         string    `json:"memo"`
		Counterparty string    `json:"counterparty"`
		Receipt      string    `json:"receipt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Transaction(raw)
	return nil
}
