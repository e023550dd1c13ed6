package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	format string
	yes    bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV or spreadsheet file" }
func (*importCmd) Usage() string {
	return `fin import [-f csv|xlsx] [-y] <file>

  Parses the file, reports how many transactions it contains, and after
  confirmation replaces the whole ledger with them. The import is
  all-or-nothing: a file that cannot be parsed changes nothing. Imported
  rows always get fresh ids. Without -f the format is taken from the
  file extension.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "f", "", "Import format: csv or xlsx. Defaults to the file extension.")
	f.BoolVar(&p.yes, "y", false, "Replace the ledger without asking for confirmation.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	format := p.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	if format != "csv" && format != "xlsx" {
		return fail(fmt.Errorf("unknown import format %q", format))
	}

	file, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	var result *fintrack.ImportResult
	if format == "csv" {
		result, err = fintrack.ImportCSV(file)
	} else {
		result, err = fintrack.ImportXLSX(file)
	}
	if err != nil {
		return fail(fmt.Errorf("error importing file, please check the format: %w", err))
	}

	if !p.yes {
		fmt.Printf("Import %d transactions? This will replace your current data. [y/N] ", result.Count())
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Import cancelled, ledger unchanged.")
			return subcommands.ExitSuccess
		}
	}

	store := OpenStore()
	store.ReplaceAll(result.Transactions)
	fmt.Printf("Imported %d transactions.\n", result.Count())
	return subcommands.ExitSuccess
}
