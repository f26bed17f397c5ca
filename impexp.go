package daftar

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file imports the JSON exports of the spreadsheet tool this book
// replaces. The exports are arrays of loosely-shaped row objects keyed by
// the original column headers ("Bank Name", "Transaction Type", ...), with
// amounts that may be numbers or grouped strings, so values are plucked
// with jsonpath and coerced one by one. Imported rows are replayed through
// the book, which keeps the balance invariant intact after an import.

// Legacy direction labels, as the spreadsheet stored them: واریز (deposit)
// and برداشت (withdrawal).
const (
	legacyDeposit    = "واریز"
	legacyWithdrawal = "برداشت"
)

// ImportLegacyAccounts reads a legacy bank-table export and opens one
// account per row. It returns the number of accounts opened; rows that fail
// validation (duplicates, negative balances) are logged and skipped.
func ImportLegacyAccounts(b *Book, r io.Reader) (int, error) {
	rows, err := decodeRows(r)
	if err != nil {
		return 0, err
	}
	imported := 0
	for i, row := range rows {
		name, err := pluckString(row, `$["Bank Name"]`)
		if err != nil {
			log.Printf("skipping account row %d: %v", i, err)
			continue
		}
		balance, err := pluckAmount(row, `$["Balance"]`)
		if err != nil {
			log.Printf("skipping account row %d (%s): %v", i, name, err)
			continue
		}
		if err := b.OpenAccount(name, balance); err != nil {
			log.Printf("skipping account row %d (%s): %v", i, name, err)
			continue
		}
		imported++
	}
	return imported, nil
}

// ImportLegacyTransactions reads a legacy transaction-table export and
// records each row through the book. Accounts must have been imported
// first. It returns the number of transactions recorded; rows the book
// rejects are logged and skipped.
func ImportLegacyTransactions(b *Book, r io.Reader) (int, error) {
	rows, err := decodeRows(r)
	if err != nil {
		return 0, err
	}
	imported := 0
	for i, row := range rows {
		tx, err := legacyTransaction(row)
		if err != nil {
			log.Printf("skipping transaction row %d: %v", i, err)
			continue
		}
		if _, err := b.Record(tx); err != nil {
			log.Printf("skipping transaction row %d: %v", i, err)
			continue
		}
		imported++
	}
	return imported, nil
}

func legacyTransaction(row any) (Transaction, error) {
	account, err := pluckString(row, `$["Bank Name"]`)
	if err != nil {
		return Transaction{}, err
	}
	kind, err := pluckString(row, `$["Transaction Type"]`)
	if err != nil {
		return Transaction{}, err
	}
	direction, err := legacyDirection(kind)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := pluckAmount(row, `$["Amount"]`)
	if err != nil {
		return Transaction{}, err
	}
	// Optional columns: missing values import as empty strings.
	date, _ := pluckString(row, `$["Date"]`)
	memo, _ := pluckString(row, `$["Purpose"]`)
	person, _ := pluckString(row, `$["Person"]`)
	receipt, _ := pluckString(row, `$["Receipt"]`)
	return Transaction{
		Account:      account,
		Direction:    direction,
		Amount:       amount,
		Date:         date,
		Memo:         memo,
		Counterparty: person,
		Receipt:      receipt,
	}, nil
}

func legacyDirection(label string) (Direction, error) {
	switch label {
	case legacyDeposit:
		return Deposit, nil
	case legacyWithdrawal:
		return Withdrawal, nil
	}
	return ParseDirection(label)
}

func decodeRows(r io.Reader) ([]any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse legacy export: %w", err)
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("legacy export is not an array of rows")
	}
	return rows, nil
}

func pluckString(row any, path string) (string, error) {
	val, err := jsonpath.Get(path, row)
	if err != nil {
		return "", fmt.Errorf("missing %s", path)
	}
	switch v := val.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}

// pluckAmount coerces a legacy amount cell. The spreadsheet stored binary
// floats, so numeric cells are rounded to the nearest whole rial; string
// cells go through the regular amount parser.
func pluckAmount(row any, path string) (Money, error) {
	val, err := jsonpath.Get(path, row)
	if err != nil {
		return Money{}, fmt.Errorf("missing %s", path)
	}
	switch v := val.(type) {
	case float64:
		return M(decimal.NewFromFloat(v).Round(0)), nil
	case string:
		return ParseAmount(v)
	default:
		return Money{}, fmt.Errorf("%s is neither number nor string", path)
	}
}
