// Package cmd implements the CLI application to manage the books.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/omidv/daftar"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&openCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&totalCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&auditCmd{}, "transactions")

	c.Register(&checkAddCmd{}, "checks")
	c.Register(&checkListCmd{}, "checks")
	c.Register(&checkRmCmd{}, "checks")

	c.Register(&debtAddCmd{}, "debts")
	c.Register(&debtListCmd{}, "debts")
	c.Register(&debtSettleCmd{}, "debts")

	c.Register(&lineAddCmd{}, "lines")
	c.Register(&lineListCmd{}, "lines")
	c.Register(&lineSoldCmd{}, "lines")
	c.Register(&lineRmCmd{}, "lines")
	c.Register(&partnerAddCmd{}, "lines")
	c.Register(&partnerListCmd{}, "lines")

	c.Register(&importCmd{}, "migration")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("D", "", "Path to the data directory (default $DAFTAR_DIR or ./daftar)")

// DataDir resolves the data directory: flag first, then environment, with a
// .env file as last-resort source for the variable.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	godotenv.Load() // best effort, a missing .env is not an error
	if dir := os.Getenv("DAFTAR_DIR"); dir != "" {
		return dir
	}
	return "daftar"
}

// openBook loads the ledger from the data directory and wraps it in a book
// that persists back to the same place.
func openBook() (*daftar.Book, error) {
	store, err := daftar.NewDirStore(DataDir())
	if err != nil {
		return nil, err
	}
	ledger, err := store.LoadLedger()
	if err != nil {
		return nil, err
	}
	return daftar.NewBook(ledger, store), nil
}

// attachments returns the attachment store under the data directory.
func attachments() daftar.AttachmentStore {
	return daftar.AttachmentStore{Dir: DataDir() + "/receipts"}
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
