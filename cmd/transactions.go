package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omidv/daftar"
)

// recordFlags are the flags shared by deposit and withdraw.
type recordFlags struct {
	account string
	amount  string
	date    string
	memo    string
	person  string
	receipt string
}

func (c *recordFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "b", "", "Account (bank) name")
	f.StringVar(&c.amount, "a", "", "Amount in rials, grouped amounts accepted")
	f.StringVar(&c.date, "d", "", "Jalali date (yyyy/mm/dd), defaults to today")
	f.StringVar(&c.memo, "m", "", "Optional reason for the transaction")
	f.StringVar(&c.person, "p", "", "Optional person or company")
	f.StringVar(&c.receipt, "r", "", "Optional path to a receipt image to attach")
}

// record parses the flags, attaches the optional receipt, and runs the
// candidate transaction through the book.
func (c *recordFlags) record(f *flag.FlagSet, direction daftar.Direction) subcommands.ExitStatus {
	if c.account == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := daftar.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var receiptRef string
	if c.receipt != "" {
		data, err := os.ReadFile(c.receipt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading receipt %q: %v\n", c.receipt, err)
			return subcommands.ExitFailure
		}
		receiptRef, err = attachments().Save(data, c.receipt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	before, err := book.AccountTotal(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := book.Record(daftar.Transaction{
		Account:      c.account,
		Direction:    direction,
		Amount:       amount,
		Date:         c.date,
		Memo:         c.memo,
		Counterparty: c.person,
		Receipt:      receiptRef,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	after, _ := book.AccountTotal(c.account)
	fmt.Printf("Recorded %s (%s)\n", id, direction)
	fmt.Printf("Balance: %s -> %s Rial\n", before, after)
	return subcommands.ExitSuccess
}

// --- Deposit Command ---

type depositCmd struct{ recordFlags }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a deposit into an account" }
func (*depositCmd) Usage() string {
	return `daftar deposit -b <account> -a <amount> [-d <date>] [-m <memo>] [-p <person>] [-r <receipt>]

  Records a deposit. The account balance is increased by the amount.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, daftar.Deposit)
}

// --- Withdraw Command ---

type withdrawCmd struct{ recordFlags }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a withdrawal from an account" }
func (*withdrawCmd) Usage() string {
	return `daftar withdraw -b <account> -a <amount> [-d <date>] [-m <memo>] [-p <person>] [-r <receipt>]

  Records a withdrawal. Rejected when the amount exceeds the account balance.
`
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, daftar.Withdrawal)
}
