package fintrack

import (
	"iter"
	"slices"
)

// Ledger represents the full ordered collection of transactions.
//
// Transactions are kept in insertion order, newest first. That order is
// only meaningful for display, there is no required sort by date.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding the given transactions in order.
// The backing slice is never nil so an empty ledger serializes as [].
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: append(make([]Transaction, 0, len(txs)), txs...)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction with the given ID, if present.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Add prepends transactions to the ledger, so the latest addition comes
// first in the default view.
func (l *Ledger) Add(txs ...Transaction) {
	l.transactions = append(slices.Clone(txs), l.transactions...)
}

// Update replaces the transaction whose ID matches. A transaction whose
// ID is not in the ledger is dropped and Update reports false; nothing
// is appended.
func (l *Ledger) Update(tx Transaction) bool {
	for i, existing := range l.transactions {
		if existing.ID == tx.ID {
			l.transactions[i] = tx
			return true
		}
	}
	return false
}

// Remove deletes the transaction with the given ID. Removing an unknown
// ID is a no-op.
func (l *Ledger) Remove(id string) {
	l.transactions = slices.DeleteFunc(l.transactions, func(tx Transaction) bool {
		return tx.ID == id
	})
}

// ReplaceAll discards the current collection and substitutes the given
// one wholesale. No merge, no duplicate detection against prior state.
func (l *Ledger) ReplaceAll(txs []Transaction) {
	l.transactions = append(make([]Transaction, 0, len(txs)), txs...)
}

// Slice returns a copy of the transactions in ledger order.
func (l *Ledger) Slice() []Transaction {
	return slices.Clone(l.transactions)
}

// Transactions returns an iterator that yields each transaction in ledger
// order. A transaction is yielded when at least one filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AcceptAll is a predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by type.
func ByType(typ Type) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// ByAccount returns a predicate that filters transactions by account.
func ByAccount(account Account) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Account == account }
}

// Equal reports whether two ledgers hold equal transactions in the same order.
func (l *Ledger) Equal(o *Ledger) bool {
	return slices.EqualFunc(l.transactions, o.transactions, Transaction.Equal)
}
