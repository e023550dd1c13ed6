package fintrack

import (
	"slices"
	"strings"
)

// All is the filter value that matches every transaction, same as leaving
// the criterion empty.
const All = "all"

// PreviewSize is the number of entries shown in the recent-transactions
// preview.
const PreviewSize = 5

// Filter describes a filtered, searchable view of the ledger. Zero or
// "all" criteria are inactive; active criteria combine with logical AND.
type Filter struct {
	Type       string // "income", "expense", or "all"/empty
	Account    string // "account1", "account2", or "all"/empty
	Category   string // exact category match, or "all"/empty
	SearchTerm string // case-insensitive substring over reason or category
}

func active(criterion string) bool { return criterion != "" && criterion != All }

// Matches reports whether the transaction passes every active criterion.
func (f Filter) Matches(tx Transaction) bool {
	if active(f.Type) && string(tx.Type) != f.Type {
		return false
	}
	if active(f.Account) && string(tx.Account) != f.Account {
		return false
	}
	// An uncategorized transaction never matches a specific category.
	if active(f.Category) && tx.Category != f.Category {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		inReason := strings.Contains(strings.ToLower(tx.Reason), term)
		inCategory := tx.Category != "" && strings.Contains(strings.ToLower(tx.Category), term)
		if !inReason && !inCategory {
			return false
		}
	}
	return true
}

// Filter returns a newly allocated ledger view holding the matching
// transactions in their current order. The receiver is not mutated.
func (l *Ledger) Filter(f Filter) *Ledger {
	view := NewLedger()
	for _, tx := range l.Transactions(f.Matches) {
		view.transactions = append(view.transactions, tx)
	}
	return view
}

// Preview truncates the ledger view to its first n entries. It is a
// presentation slice applied after filtering, not a filter.
func (l *Ledger) Preview(n int) *Ledger {
	if n < 0 || n > len(l.transactions) {
		n = len(l.transactions)
	}
	return NewLedger(l.transactions[:n]...)
}

// Categories returns the sorted set of distinct non-empty categories
// present in the ledger. It feeds the suggestion list, which is a
// convenience only: any category string is accepted on a transaction.
func (l *Ledger) Categories() []string {
	seen := make(map[string]struct{})
	for _, tx := range l.Transactions(AcceptAll) {
		if tx.Category != "" {
			seen[tx.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}
