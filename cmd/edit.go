package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id       string
	date     string
	amount   string
	reason   string
	typ      string
	account  string
	category string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing transaction, keeping its id" }
func (*editCmd) Usage() string {
	return `fin edit -id <id> [-d <date>] [-a <amount>] [-r <reason>] [-t <type>] [-account <account>] [-c <category>]

  Replaces the transaction with the given id by a new record carrying the
  same id. Only the provided fields change.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "ID of the transaction to edit.")
	f.StringVar(&p.date, "d", "", "New date (YYYY-MM-DD).")
	f.StringVar(&p.amount, "a", "", "New amount.")
	f.StringVar(&p.reason, "r", "", "New reason.")
	f.StringVar(&p.typ, "t", "", "New type: income or expense.")
	f.StringVar(&p.account, "account", "", "New account: account1 or account2.")
	f.StringVar(&p.category, "c", "", "New category tag.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return fail(fmt.Errorf("the -id flag is required"))
	}
	store := OpenStore()
	tx, ok := store.Ledger().Get(p.id)
	if !ok {
		return fail(fmt.Errorf("no transaction with id %q", p.id))
	}

	if p.date != "" {
		day, err := fintrack.ParseDate(p.date)
		if err != nil {
			return fail(err)
		}
		tx.Date = day
	}
	if p.amount != "" {
		amount, err := fintrack.ParseAmount(p.amount)
		if err != nil {
			return fail(err)
		}
		tx.Amount = amount
	}
	if p.reason != "" {
		tx.Reason = p.reason
	}
	if p.typ != "" {
		typ, err := fintrack.ParseType(p.typ)
		if err != nil {
			return fail(err)
		}
		tx.Type = typ
	}
	if p.account != "" {
		account, err := fintrack.ParseAccount(p.account)
		if err != nil {
			return fail(err)
		}
		tx.Account = account
	}
	f.Visit(func(fl *flag.Flag) {
		// distinguish "clear the category" from "leave it alone"
		if fl.Name == "c" {
			tx.Category = p.category
		}
	})

	tx, err := tx.Validate()
	if err != nil {
		return fail(err)
	}
	store.Update(tx)
	fmt.Printf("Updated %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
