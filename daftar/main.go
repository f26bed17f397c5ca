package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/omidv/daftar/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell in completion
	// mode, Complete prints candidates and exits.
	completion().Complete("daftar")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"open", "accounts", "total",
		"deposit", "withdraw", "tx", "rm", "audit",
		"check-add", "check-list", "check-rm",
		"debt-add", "debt-list", "debt-settle",
		"line-add", "line-list", "line-sold", "line-rm",
		"partner-add", "partner-list",
		"import",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"D": predict.Dirs("*"),
		},
	}
}
