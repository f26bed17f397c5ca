package daftar

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The two ledger tables are persisted as JSONL snapshots: one JSON object
// per line, whole file rewritten on every save.

// EncodeAccounts writes the account table to w, one account per line.
func EncodeAccounts(w io.Writer, accounts iter.Seq[Account]) error {
	for a := range accounts {
		if err := encodeLine(w, a); err != nil {
			return fmt.Errorf("encoding account %q: %w", a.Name, err)
		}
	}
	return nil
}

// DecodeAccounts reads an account table written by EncodeAccounts.
func DecodeAccounts(r io.Reader) ([]Account, error) {
	var accounts []Account
	if err := scanLines(r, func(line []byte) error {
		var raw struct {
			Name    string `json:"name"`
			Opening Money  `json:"opening"`
			Balance Money  `json:"balance"`
		}
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		accounts = append(accounts, Account{Name: raw.Name, Opening: raw.Opening, Balance: raw.Balance})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not decode accounts: %w", err)
	}
	return accounts, nil
}

// EncodeTransactions writes the transaction table to w, one record per line.
func EncodeTransactions(w io.Writer, transactions iter.Seq[Transaction]) error {
	for tx := range transactions {
		if err := encodeLine(w, tx); err != nil {
			return fmt.Errorf("encoding transaction %q: %w", tx.ID, err)
		}
	}
	return nil
}

// DecodeTransactions reads a transaction table written by EncodeTransactions.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var transactions []Transaction
	if err := scanLines(r, func(line []byte) error {
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return err
		}
		transactions = append(transactions, tx)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not decode transactions: %w", err)
	}
	return transactions, nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func scanLines(r io.Reader, decode func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // skip empty lines
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("cannot parse line %q: %w", string(line), err)
		}
	}
	return scanner.Err()
}
