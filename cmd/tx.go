package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omidv/daftar"
	"github.com/omidv/daftar/jalali"
	"github.com/omidv/daftar/renderer"
)

type txCmd struct {
	account   string
	direction string
	start     string
	end       string
	head      int
	tail      int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions with their totals" }
func (*txCmd) Usage() string {
	return `daftar tx [-b <account>] [-dir <direction>] [-s <start>] [-e <end>] [-head <n>] [-tail <n>]

  Lists transactions, with options for filtering by account, direction, and
  Jalali date range, and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "b", "", "Only this account.")
	f.StringVar(&c.direction, "dir", "", "Only this direction (deposit, withdrawal).")
	f.StringVar(&c.start, "s", "", "Start of the Jalali date range (yyyy/mm/dd).")
	f.StringVar(&c.end, "e", "", "End of the Jalali date range (yyyy/mm/dd).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	filter := daftar.Filter{Account: c.account}
	if c.direction != "" {
		dir, err := daftar.ParseDirection(c.direction)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filter.Direction = dir
	}
	if c.start != "" {
		day, err := jalali.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.From = day
	}
	if c.end != "" {
		day, err := jalali.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.To = day
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var transactions []daftar.Transaction
	for tx := range book.Ledger().Select(filter) {
		transactions = append(transactions, tx)
	}
	totals := daftar.Sum(book.Ledger().Select(filter))

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, totals))
	return subcommands.ExitSuccess
}
