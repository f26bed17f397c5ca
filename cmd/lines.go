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

func openLines() (*daftar.Lines, error) {
	return daftar.OpenLines(DataDir())
}

// --- Line Add Command ---

type lineAddCmd struct {
	number      string
	price       string
	description string
	partner     string
}

func (*lineAddCmd) Name() string     { return "line-add" }
func (*lineAddCmd) Synopsis() string { return "add a phone number to the inventory" }
func (*lineAddCmd) Usage() string {
	return `daftar line-add -n <number> -a <price> [-m <note>] [-partner <partner id>]

  Adds a phone-number asset to the inventory.
`
}

func (c *lineAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Phone number")
	f.StringVar(&c.price, "a", "", "Asking price in rials")
	f.StringVar(&c.description, "m", "", "Optional note")
	f.StringVar(&c.partner, "partner", "", "Optional co-owning partner id")
}

func (c *lineAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := daftar.ParseAmount(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id, err := lines.Add(daftar.Line{
		Number:      c.number,
		Price:       price,
		Description: c.description,
		PartnerID:   c.partner,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added line %s\n", id)
	return subcommands.ExitSuccess
}

// --- Line List Command ---

type lineListCmd struct {
	sold bool
	all  bool
}

func (*lineListCmd) Name() string     { return "line-list" }
func (*lineListCmd) Synopsis() string { return "list the phone-number inventory" }
func (*lineListCmd) Usage() string {
	return `daftar line-list [-sold | -all]

  Lists available phone numbers by default.
`
}

func (c *lineListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sold, "sold", false, "List sold numbers instead.")
	f.BoolVar(&c.all, "all", false, "List the whole inventory.")
}

func (c *lineListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	status := daftar.LineAvailable
	if c.sold {
		status = daftar.LineSold
	}
	if c.all {
		status = ""
	}
	printMarkdown(renderer.LinesMarkdown(lines.List(status)))
	return subcommands.ExitSuccess
}

// --- Line Sold Command ---

type lineSoldCmd struct {
	id string
}

func (*lineSoldCmd) Name() string     { return "line-sold" }
func (*lineSoldCmd) Synopsis() string { return "mark a phone number as sold" }
func (*lineSoldCmd) Usage() string {
	return `daftar line-sold -id <line id>

  Marks a number as sold. Record the proceeds as a deposit separately.
`
}

func (c *lineSoldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Line id, as shown by 'daftar line-list'")
}

func (c *lineSoldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := lines.MarkSold(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked line %s as sold\n", c.id)
	return subcommands.ExitSuccess
}

// --- Line Remove Command ---

type lineRmCmd struct {
	id string
}

func (*lineRmCmd) Name() string     { return "line-rm" }
func (*lineRmCmd) Synopsis() string { return "remove a phone number from the inventory" }
func (*lineRmCmd) Usage() string {
	return `daftar line-rm -id <line id>

  Removes a phone-number asset entirely.
`
}

func (c *lineRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Line id, as shown by 'daftar line-list'")
}

func (c *lineRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := lines.Remove(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed line %s\n", c.id)
	return subcommands.ExitSuccess
}

// --- Partner Add Command ---

type partnerAddCmd struct {
	name    string
	contact string
	share   string
}

func (*partnerAddCmd) Name() string     { return "partner-add" }
func (*partnerAddCmd) Synopsis() string { return "register an inventory partner" }
func (*partnerAddCmd) Usage() string {
	return `daftar partner-add -n <name> [-c <contact>] [-share <share>]

  Registers a partner who co-owns part of the line inventory.
`
}

func (c *partnerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Partner name")
	f.StringVar(&c.contact, "c", "", "Optional contact info")
	f.StringVar(&c.share, "share", "", "Optional ownership share, free form")
}

func (c *partnerAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id, err := lines.AddPartner(daftar.Partner{Name: c.name, Contact: c.contact, Share: c.share})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered partner %s\n", id)
	return subcommands.ExitSuccess
}

// --- Partner List Command ---

type partnerListCmd struct{}

func (*partnerListCmd) Name() string     { return "partner-list" }
func (*partnerListCmd) Synopsis() string { return "list inventory partners" }
func (*partnerListCmd) Usage() string {
	return `daftar partner-list

  Lists all registered partners.
`
}

func (*partnerListCmd) SetFlags(*flag.FlagSet) {}

func (*partnerListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lines, err := openLines()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PartnersMarkdown(lines.Partners()))
	return subcommands.ExitSuccess
}
