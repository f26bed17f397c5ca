package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/omidv/daftar"
)

type openCmd struct {
	name    string
	initial string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new bank account" }
func (*openCmd) Usage() string {
	return `daftar open -b <name> [-a <initial balance>]

  Opens a new bank account. The initial balance may be zero or positive and
  accepts grouped amounts like 1,500,000.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "b", "", "Account (bank) name")
	f.StringVar(&c.initial, "a", "0", "Initial balance in rials")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	initial, err := daftar.ParseAmount(c.initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.OpenAccount(c.name, initial); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened account %q with initial balance %s Rial\n", c.name, initial)
	return subcommands.ExitSuccess
}
