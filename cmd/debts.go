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

// --- Debt Add Command ---

type debtAddCmd struct {
	kind        string
	name        string
	amount      string
	description string
	due         string
	contact     string
}

func (*debtAddCmd) Name() string     { return "debt-add" }
func (*debtAddCmd) Synopsis() string { return "register a receivable or payable" }
func (*debtAddCmd) Usage() string {
	return `daftar debt-add -k <creditor|debtor> -n <name> -a <amount> [-due <date>] [-m <note>] [-c <contact>]

  Registers who owes whom. Settling the debt is recorded separately as a
  regular transaction.
`
}

func (c *debtAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Debt kind (creditor, debtor)")
	f.StringVar(&c.name, "n", "", "Person or company name")
	f.StringVar(&c.amount, "a", "", "Amount in rials")
	f.StringVar(&c.description, "m", "", "Optional note")
	f.StringVar(&c.due, "due", "", "Optional due date (Jalali yyyy/mm/dd)")
	f.StringVar(&c.contact, "c", "", "Optional contact info")
}

func (c *debtAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := daftar.ParseDebtKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := daftar.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	debts, err := daftar.OpenDebts(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id, err := debts.Register(daftar.Debt{
		Kind:        kind,
		Name:        c.name,
		Amount:      amount,
		Description: c.description,
		DueDate:     c.due,
		Contact:     c.contact,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered debt %s\n", id)
	return subcommands.ExitSuccess
}

// --- Debt List Command ---

type debtListCmd struct {
	kind string
}

func (*debtListCmd) Name() string     { return "debt-list" }
func (*debtListCmd) Synopsis() string { return "list receivables and payables" }
func (*debtListCmd) Usage() string {
	return `daftar debt-list [-k <creditor|debtor>]

  Lists debt records, optionally narrowed to one kind.
`
}

func (c *debtListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Only this kind (creditor, debtor)")
}

func (c *debtListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind daftar.DebtKind
	if c.kind != "" {
		var err error
		if kind, err = daftar.ParseDebtKind(c.kind); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	debts, err := daftar.OpenDebts(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DebtsMarkdown(debts.List(kind)))
	return subcommands.ExitSuccess
}

// --- Debt Settle Command ---

type debtSettleCmd struct {
	id string
}

func (*debtSettleCmd) Name() string     { return "debt-settle" }
func (*debtSettleCmd) Synopsis() string { return "remove a settled debt record" }
func (*debtSettleCmd) Usage() string {
	return `daftar debt-settle -id <debt id>

  Removes a debt record, typically after the matching transaction has been
  recorded.
`
}

func (c *debtSettleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Debt id, as shown by 'daftar debt-list'")
}

func (c *debtSettleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	debts, err := daftar.OpenDebts(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := debts.Settle(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settled debt %s\n", c.id)
	return subcommands.ExitSuccess
}
