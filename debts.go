package daftar

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/omidv/daftar/jalali"
)

// DebtKind distinguishes money owed to the business from money it owes.
type DebtKind string

const (
	// Creditor is someone the business owes money to.
	Creditor DebtKind = "creditor"
	// Debtor is someone who owes the business money.
	Debtor DebtKind = "debtor"
)

// ParseDebtKind parses a string into a DebtKind.
func ParseDebtKind(s string) (DebtKind, error) {
	switch s {
	case "creditor":
		return Creditor, nil
	case "debtor":
		return Debtor, nil
	default:
		return "", fmt.Errorf("unknown debt kind %q: want creditor or debtor", s)
	}
}

// Debt is one receivable or payable record.
type Debt struct {
	ID          string   `json:"id"`
	Kind        DebtKind `json:"kind"`
	Name        string   `json:"name"`
	Amount      Money    `json:"amount"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"` // Jalali display date
	Contact     string   `json:"contact,omitempty"`
	Registered  string   `json:"registered"` // Jalali display date
}

const debtsFile = "debts.jsonl"

// Debts is the receivable/payable registry.
type Debts struct {
	path string
	list []Debt
}

// OpenDebts loads the debt registry from the data directory.
func OpenDebts(dir string) (*Debts, error) {
	path := filepath.Join(dir, debtsFile)
	list, err := loadRecords[Debt](path)
	if err != nil {
		return nil, err
	}
	return &Debts{path: path, list: list}, nil
}

// Register stores a new debt record and returns its id.
func (d *Debts) Register(record Debt) (string, error) {
	if !record.Amount.IsPositive() {
		return "", fmt.Errorf("%w: debt amount must be > 0", ErrInvalidAmount)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Registered == "" {
		record.Registered = jalali.Today().String()
	}
	d.list = append(d.list, record)
	return record.ID, saveRecords(d.path, d.list)
}

// List returns a copy of all debt records, optionally narrowed to one kind.
func (d *Debts) List(kind DebtKind) []Debt {
	if kind == "" {
		return slices.Clone(d.list)
	}
	var out []Debt
	for _, record := range d.list {
		if record.Kind == kind {
			out = append(out, record)
		}
	}
	return out
}

// Settle removes a debt record, typically after the matching transaction
// was recorded in the book.
func (d *Debts) Settle(id string) error {
	for i, record := range d.list {
		if record.ID == id {
			d.list = slices.Delete(d.list, i, i+1)
			return saveRecords(d.path, d.list)
		}
	}
	return fmt.Errorf("debt %q not found", id)
}
