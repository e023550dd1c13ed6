// Package renderer formats ledger data as markdown for terminal output.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fintrack/fintrack"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx fintrack.Transaction) string {
	sign := "-"
	if tx.Type == fintrack.Income {
		sign = "+"
	}
	line := fmt.Sprintf("%s %s%s %q on %s", tx.Date, sign, tx.Amount, tx.Reason, tx.Account.Label())
	if tx.Category != "" {
		line += fmt.Sprintf(" [%s]", tx.Category)
	}
	return line
}

// Transactions renders a ledger view as a markdown table, in ledger
// order. An empty unfiltered ledger and an empty filtered view get
// distinct empty-state messages.
func Transactions(l *fintrack.Ledger, filtered bool) string {
	if l.Len() == 0 {
		if filtered {
			return "No transactions found with current filters.\n"
		}
		return "No transactions yet. Add your first transaction to get started!\n"
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "| Date | Amount | Reason | Account | Category | ID |\n")
	fmt.Fprintf(b, "|:---|---:|:---|:---|:---|:---|\n")
	for _, tx := range l.Transactions(fintrack.AcceptAll) {
		sign := "-"
		if tx.Type == fintrack.Income {
			sign = "+"
		}
		fmt.Fprintf(b, "| %s | %s%s | %s | %s | %s | %s |\n",
			tx.Date, sign, tx.Amount, tx.Reason, tx.Account.Label(), tx.Category, tx.ID)
	}
	return b.String()
}

// Balances renders the three balance cards as a markdown table, amounts
// formatted in the given display currency.
func Balances(l *fintrack.Ledger, currency string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "| Account | Balance |\n")
	fmt.Fprintf(b, "|:---|---:|\n")
	fmt.Fprintf(b, "| %s | %s |\n", fintrack.Account1.Label(), l.BalanceOf(fintrack.Account1).Display(currency))
	fmt.Fprintf(b, "| %s | %s |\n", fintrack.Account2.Label(), l.BalanceOf(fintrack.Account2).Display(currency))
	fmt.Fprintf(b, "| Total | %s |\n", l.TotalBalance().Display(currency))
	return b.String()
}

// Categories renders the category suggestion list.
func Categories(categories []string) string {
	if len(categories) == 0 {
		return "No categories yet.\n"
	}
	b := &strings.Builder{}
	for _, c := range categories {
		fmt.Fprintf(b, "- %s\n", c)
	}
	return b.String()
}
