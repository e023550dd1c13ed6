// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/blob"
	"github.com/fintrack/fintrack/logging"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")

	c.Register(&listCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", "transactions.json", "Path to the file holding the transactions (JSON format)")
var currency = flag.String("currency", "EUR", "ISO currency code used to display balances")

// OpenStore opens the ledger store backed by the data file. A missing or
// corrupt file yields an empty ledger, it never blocks the command.
func OpenStore() *fintrack.Store {
	return fintrack.NewStore(blob.NewFile(*dataFile), logging.Setup())
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the terminal cannot be styled.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// buildTransaction assembles and validates a transaction from flag
// values. An empty date means today.
func buildTransaction(dateStr, amountStr, reason string, typ fintrack.Type, accountStr, category string) (fintrack.Transaction, error) {
	var day fintrack.Date
	if dateStr != "" {
		var err error
		day, err = fintrack.ParseDate(dateStr)
		if err != nil {
			return fintrack.Transaction{}, err
		}
	}
	amount, err := fintrack.ParseAmount(amountStr)
	if err != nil {
		return fintrack.Transaction{}, err
	}
	account, err := fintrack.ParseAccount(accountStr)
	if err != nil {
		return fintrack.Transaction{}, err
	}
	tx := fintrack.NewTransaction(day, amount, reason, typ, account, category)
	return tx.Validate()
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
