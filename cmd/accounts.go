package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omidv/daftar"
	"github.com/omidv/daftar/renderer"
)

// --- Accounts Command ---

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `daftar accounts

  Lists every account with its balance and the grand total.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var accounts []daftar.Account
	for a := range book.Ledger().Accounts() {
		accounts = append(accounts, a)
	}
	printMarkdown(renderer.AccountsMarkdown(accounts, book.Ledger().SumAccounts()))
	return subcommands.ExitSuccess
}

// --- Total Command ---

type totalCmd struct {
	account string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the balance of one account" }
func (*totalCmd) Usage() string {
	return `daftar total -b <account>

  Prints the current balance of the named account.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "b", "", "Account (bank) name")
}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	total, err := book.AccountTotal(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s Rial\n", c.account, total)
	return subcommands.ExitSuccess
}

// --- Audit Command ---

type auditCmd struct{}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "verify every balance against its transaction history" }
func (*auditCmd) Usage() string {
	return `daftar audit

  Re-derives every account balance from the stored transactions and reports
  accounts whose balance disagrees with its history.
`
}

func (*auditCmd) SetFlags(*flag.FlagSet) {}

func (*auditCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bad := book.Ledger().Audit()
	if len(bad) == 0 {
		fmt.Println("All balances agree with their transaction history.")
		return subcommands.ExitSuccess
	}
	for _, name := range bad {
		fmt.Fprintf(os.Stderr, "balance mismatch on account %q\n", name)
	}
	return subcommands.ExitFailure
}
