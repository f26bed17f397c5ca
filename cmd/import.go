package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omidv/daftar"
)

type importCmd struct {
	accountsFile     string
	transactionsFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import the JSON exports of the old spreadsheet tool" }
func (*importCmd) Usage() string {
	return `daftar import [-accounts <banks.json>] [-tx <transactions.json>]

  Imports the row-oriented JSON exports of the spreadsheet this book
  replaces. Accounts are imported before transactions, and every imported
  row is replayed through the balance engine, so the books stay consistent.
  Rows that fail validation are logged and skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountsFile, "accounts", "", "Legacy bank table export (JSON array of rows)")
	f.StringVar(&c.transactionsFile, "tx", "", "Legacy transaction table export (JSON array of rows)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountsFile == "" && c.transactionsFile == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.accountsFile != "" {
		file, err := os.Open(c.accountsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		n, err := daftar.ImportLegacyAccounts(book, file)
		file.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d accounts\n", n)
	}

	if c.transactionsFile != "" {
		file, err := os.Open(c.transactionsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		n, err := daftar.ImportLegacyTransactions(book, file)
		file.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d transactions\n", n)
	}

	return subcommands.ExitSuccess
}
