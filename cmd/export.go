package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a CSV or spreadsheet file" }
func (*exportCmd) Usage() string {
	return `fin export [-f csv|xlsx] [-o <file>]

  Exports all transactions, in ledger order, to a tabular file. Without
  -o the file is named transactions_<date>.<ext> in the current
  directory.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "f", "csv", "Export format: csv or xlsx.")
	f.StringVar(&p.output, "o", "", "Output file. Defaults to transactions_<date>.<ext>.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.format != "csv" && p.format != "xlsx" {
		return fail(fmt.Errorf("unknown export format %q", p.format))
	}
	store := OpenStore()
	ledger := store.Ledger()
	if ledger.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No transactions to export")
		return subcommands.ExitFailure
	}

	output := p.output
	if output == "" {
		output = fintrack.ExportFilename(p.format)
	}
	file, err := os.Create(output)
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	if p.format == "csv" {
		err = fintrack.ExportCSV(file, ledger)
	} else {
		err = fintrack.ExportXLSX(file, ledger)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %d transactions to %s\n", ledger.Len(), output)
	return subcommands.ExitSuccess
}
