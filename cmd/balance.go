package cmd

import (
	"context"
	"flag"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show both account balances and the total" }
func (*balanceCmd) Usage() string {
	return `fin balance

  Shows the balance of each account and the total. Income counts
  positive, expense negative.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	printMarkdown(renderer.Balances(store.Ledger(), *currency))
	return subcommands.ExitSuccess
}
