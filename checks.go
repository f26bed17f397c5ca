package daftar

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
)

// CheckKind distinguishes checks the business wrote from checks it holds.
type CheckKind string

const (
	// CheckIssued is a check written by the business.
	CheckIssued CheckKind = "issued"
	// CheckReceived is a check the business holds from someone else.
	CheckReceived CheckKind = "received"
)

// ParseCheckKind parses a string into a CheckKind.
func ParseCheckKind(s string) (CheckKind, error) {
	switch s {
	case "issued":
		return CheckIssued, nil
	case "received":
		return CheckReceived, nil
	default:
		return "", fmt.Errorf("unknown check kind %q: want issued or received", s)
	}
}

// Check is one registered check. Checks are bookkeeping records only; cashing
// a check is recorded separately as a regular transaction.
type Check struct {
	ID           string    `json:"id"`
	Kind         CheckKind `json:"kind"`
	Number       string    `json:"number"`
	DueDate      string    `json:"dueDate"` // Jalali display date
	Owner        string    `json:"owner"`
	Amount       Money     `json:"amount"`
	Description  string    `json:"description,omitempty"`
	AccountOwner string    `json:"accountOwner,omitempty"`
	Image        string    `json:"image,omitempty"` // attachment reference
}

const checksFile = "checks.jsonl"

// Checks is the check registry, snapshot-backed like the ledger tables.
type Checks struct {
	path string
	list []Check
}

// OpenChecks loads the check registry from the data directory.
func OpenChecks(dir string) (*Checks, error) {
	path := filepath.Join(dir, checksFile)
	list, err := loadRecords[Check](path)
	if err != nil {
		return nil, err
	}
	return &Checks{path: path, list: list}, nil
}

// Register stores a new check and returns its id.
func (c *Checks) Register(ck Check) (string, error) {
	if !ck.Amount.IsPositive() {
		return "", fmt.Errorf("%w: check amount must be > 0", ErrInvalidAmount)
	}
	if ck.ID == "" {
		ck.ID = uuid.NewString()
	}
	c.list = append(c.list, ck)
	return ck.ID, saveRecords(c.path, c.list)
}

// List returns a copy of all registered checks.
func (c *Checks) List() []Check { return slices.Clone(c.list) }

// Find returns the check with the given id.
func (c *Checks) Find(id string) (Check, bool) {
	for _, ck := range c.list {
		if ck.ID == id {
			return ck, true
		}
	}
	return Check{}, false
}

// Remove deletes the check with the given id.
func (c *Checks) Remove(id string) error {
	for i, ck := range c.list {
		if ck.ID == id {
			c.list = slices.Delete(c.list, i, i+1)
			return saveRecords(c.path, c.list)
		}
	}
	return fmt.Errorf("check %q not found", id)
}
