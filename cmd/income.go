package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	date     string
	amount   string
	reason   string
	account  string
	category string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income transaction" }
func (*incomeCmd) Usage() string {
	return `fin income -a <amount> -r <reason> [-d <date>] [-account <account>] [-c <category>]

  Records an income transaction. Income adds to the account balance.
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.amount, "a", "", "Amount, a positive decimal.")
	f.StringVar(&p.reason, "r", "", "Reason for the transaction.")
	f.StringVar(&p.account, "account", string(fintrack.Account1), "Account: account1 or account2.")
	f.StringVar(&p.category, "c", "", "Optional category tag.")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := buildTransaction(p.date, p.amount, p.reason, fintrack.Income, p.account, p.category)
	if err != nil {
		return fail(err)
	}
	store := OpenStore()
	store.Add(tx)
	fmt.Printf("Recorded %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
