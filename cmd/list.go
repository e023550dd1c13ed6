package cmd

import (
	"context"
	"flag"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	typ      string
	account  string
	category string
	search   string
	preview  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, with filters and search" }
func (*listCmd) Usage() string {
	return `fin list [-t <type>] [-account <account>] [-c <category>] [-q <term>] [-preview]

  Lists transactions newest first. Active filters combine with AND. The
  search term matches reason or category, case-insensitively. -preview
  shows only the most recent entries, like the recent-transactions card.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", fintrack.All, "Filter by type: income, expense, or all.")
	f.StringVar(&p.account, "account", fintrack.All, "Filter by account: account1, account2, or all.")
	f.StringVar(&p.category, "c", fintrack.All, "Filter by exact category, or all.")
	f.StringVar(&p.search, "q", "", "Free-text search over reason and category.")
	f.BoolVar(&p.preview, "preview", false, "Show only the 5 most recent matching transactions.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	filter := fintrack.Filter{
		Type:       p.typ,
		Account:    p.account,
		Category:   p.category,
		SearchTerm: p.search,
	}
	filtered := filter != (fintrack.Filter{Type: fintrack.All, Account: fintrack.All, Category: fintrack.All})

	view := store.Ledger().Filter(filter)
	if p.preview {
		view = view.Preview(fintrack.PreviewSize)
	}
	printMarkdown(renderer.Transactions(view, filtered))
	return subcommands.ExitSuccess
}
