package daftar

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

const (
	accountsFile     = "accounts.jsonl"
	transactionsFile = "transactions.jsonl"
)

// DirStore persists the two ledger tables as JSONL snapshot files inside a
// data directory. Saves go through a temp file and a rename, so a crash mid
// write never leaves a torn snapshot behind; it can still leave the file
// one save behind memory, which is the accepted single-user risk.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir, creating it if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *DirStore) Dir() string { return s.dir }

// LoadLedger reads both tables into a fresh ledger. Missing snapshot files
// load as empty tables, so a new data directory just works.
func (s *DirStore) LoadLedger() (*Ledger, error) {
	ledger := NewLedger()

	if err := s.readFile(accountsFile, func(r io.Reader) error {
		accounts, err := DecodeAccounts(r)
		if err != nil {
			return err
		}
		for _, a := range accounts {
			ledger.UpsertAccount(a)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.readFile(transactionsFile, func(r io.Reader) error {
		transactions, err := DecodeTransactions(r)
		if err != nil {
			return err
		}
		for _, tx := range transactions {
			ledger.AppendTransaction(tx)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return ledger, nil
}

// SaveAccounts writes the account table snapshot.
func (s *DirStore) SaveAccounts(l *Ledger) error {
	return s.writeFile(accountsFile, func(w io.Writer) error {
		return EncodeAccounts(w, l.Accounts())
	})
}

// SaveTransactions writes the transaction table snapshot.
func (s *DirStore) SaveTransactions(l *Ledger) error {
	return s.writeFile(transactionsFile, func(w io.Writer) error {
		return EncodeTransactions(w, l.Transactions(AcceptAll))
	})
}

func (s *DirStore) readFile(name string, decode func(io.Reader) error) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %s does not exist yet, starting with an empty table", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", name, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", name, err)
	}
	return nil
}

func (s *DirStore) writeFile(name string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not flush %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("could not replace %q: %w", name, err)
	}
	return nil
}
