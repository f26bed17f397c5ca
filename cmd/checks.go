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

// --- Check Add Command ---

type checkAddCmd struct {
	kind        string
	number      string
	due         string
	owner       string
	amount      string
	description string
	account     string
	image       string
}

func (*checkAddCmd) Name() string     { return "check-add" }
func (*checkAddCmd) Synopsis() string { return "register a check" }
func (*checkAddCmd) Usage() string {
	return `daftar check-add -k <issued|received> -n <number> -due <date> -o <owner> -a <amount> [-m <note>] [-b <account owner>] [-i <image>]

  Registers a check. Checks are bookkeeping records only; record the cashing
  as a regular deposit or withdrawal.
`
}

func (c *checkAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Check kind (issued, received)")
	f.StringVar(&c.number, "n", "", "Check number")
	f.StringVar(&c.due, "due", "", "Due date (Jalali yyyy/mm/dd)")
	f.StringVar(&c.owner, "o", "", "Name on the check")
	f.StringVar(&c.amount, "a", "", "Amount in rials")
	f.StringVar(&c.description, "m", "", "Optional note")
	f.StringVar(&c.account, "b", "", "Account owner")
	f.StringVar(&c.image, "i", "", "Optional path to a check image to attach")
}

func (c *checkAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := daftar.ParseCheckKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.number == "" || c.owner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := daftar.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var imageRef string
	if c.image != "" {
		data, err := os.ReadFile(c.image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading image %q: %v\n", c.image, err)
			return subcommands.ExitFailure
		}
		imageRef, err = attachments().Save(data, c.image)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	checks, err := daftar.OpenChecks(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id, err := checks.Register(daftar.Check{
		Kind:         kind,
		Number:       c.number,
		DueDate:      c.due,
		Owner:        c.owner,
		Amount:       amount,
		Description:  c.description,
		AccountOwner: c.account,
		Image:        imageRef,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered check %s\n", id)
	return subcommands.ExitSuccess
}

// --- Check List Command ---

type checkListCmd struct{}

func (*checkListCmd) Name() string     { return "check-list" }
func (*checkListCmd) Synopsis() string { return "list registered checks" }
func (*checkListCmd) Usage() string {
	return `daftar check-list

  Lists all registered checks.
`
}

func (*checkListCmd) SetFlags(*flag.FlagSet) {}

func (*checkListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	checks, err := daftar.OpenChecks(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ChecksMarkdown(checks.List()))
	return subcommands.ExitSuccess
}

// --- Check Remove Command ---

type checkRmCmd struct {
	id string
}

func (*checkRmCmd) Name() string     { return "check-rm" }
func (*checkRmCmd) Synopsis() string { return "delete a registered check" }
func (*checkRmCmd) Usage() string {
	return `daftar check-rm -id <check id>

  Deletes a check record. Balances are unaffected.
`
}

func (c *checkRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Check id, as shown by 'daftar check-list'")
}

func (c *checkRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	checks, err := daftar.OpenChecks(DataDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := checks.Remove(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted check %s\n", c.id)
	return subcommands.ExitSuccess
}
