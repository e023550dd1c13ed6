package fintrack

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the ledger to 'w' as a JSON array of transaction
// records, in ledger order. This is the persistence blob format.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := json.Marshal(l.transactions)
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a JSON array of transaction records from 'r' and
// returns a fresh ledger in the same order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("cannot parse ledger: %w", err)
	}
	return NewLedger(txs...), nil
}
