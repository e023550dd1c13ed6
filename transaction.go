package fintrack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type is a typed string identifying the direction of a transaction.
type Type string

// Transaction types.
const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType parses a string into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Account is one of the two fixed buckets transactions are attributed to.
type Account string

// The two accounts. The set is fixed, extending it is a schema change.
const (
	Account1 Account = "account1"
	Account2 Account = "account2"
)

// ParseAccount parses a canonical account value into an Account.
func ParseAccount(s string) (Account, error) {
	switch Account(s) {
	case Account1:
		return Account1, nil
	case Account2:
		return Account2, nil
	default:
		return "", fmt.Errorf("unknown account: %q", s)
	}
}

// Label returns the display label used in exports and listings.
func (a Account) Label() string {
	if a == Account1 {
		return "Account 1"
	}
	return "Account 2"
}

// AccountFromLabel maps a display label back to the canonical account.
// Anything that is not exactly the Account1 label resolves to Account2,
// matching the behavior of previously exported files.
func AccountFromLabel(label string) Account {
	if label == Account1.Label() {
		return Account1
	}
	return Account2
}

// Transaction is a single ledger record. It is immutable once created,
// an edit produces a new value carrying the same ID.
type Transaction struct {
	ID       string  `json:"id"`
	Date     Date    `json:"date"`
	Amount   Amount  `json:"amount"`
	Reason   string  `json:"reason"`
	Type     Type    `json:"type"`
	Account  Account `json:"account"`
	Category string  `json:"category,omitempty"`
}

// NewTransaction creates a transaction with a fresh unique ID.
func NewTransaction(day Date, amount Amount, reason string, typ Type, account Account, category string) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Date:     day,
		Amount:   amount,
		Reason:   reason,
		Type:     typ,
		Account:  account,
		Category: category,
	}
}

// Validate checks the transaction fields and returns a copy with quick
// fixes applied: the reason is trimmed and a zero date is set to today.
func (t Transaction) Validate() (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	t.Reason = strings.TrimSpace(t.Reason)
	if t.Reason == "" {
		return t, fmt.Errorf("transaction reason is missing")
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if _, err := ParseType(string(t.Type)); err != nil {
		return t, err
	}
	if _, err := ParseAccount(string(t.Account)); err != nil {
		return t, err
	}
	return t, nil
}

// Signed returns the transaction's contribution to a balance:
// +amount for income, -amount for expense.
func (t Transaction) Signed() Amount {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Equal reports whether two transactions carry the same data, ID included.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.EqualData(o)
}

// EqualData reports whether two transactions carry the same data, ignoring
// the ID. Import reassigns IDs, so round-trip comparisons use this.
func (t Transaction) EqualData(o Transaction) bool {
	return t.Date == o.Date &&
		t.Amount.Equal(o.Amount) &&
		t.Reason == o.Reason &&
		t.Type == o.Type &&
		t.Account == o.Account &&
		t.Category == o.Category
}
