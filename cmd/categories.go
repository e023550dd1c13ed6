package cmd

import (
	"context"
	"flag"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the categories present in the ledger" }
func (*categoriesCmd) Usage() string {
	return `fin categories

  Lists the distinct categories used by transactions, sorted. This is the
  suggestion list; any category string is accepted on a transaction.
`
}

func (p *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	printMarkdown(renderer.Categories(store.Ledger().Categories()))
	return subcommands.ExitSuccess
}
