package fintrack

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// this file contains the delimited-text generation of the tabular codec.
// It is the canonical interchange format: UTF-8, comma separated, one
// header row, RFC-4180 quoting in both directions.

// csvColumns is the fixed column layout. The Category column is appended
// only when at least one transaction carries a category.
var csvColumns = []string{"Date", "Amount", "Type", "Account", "Reason"}

const categoryColumn = "Category"

// ImportResult is what a codec parse returns. The caller inspects Count
// before deciding to apply the transactions with ReplaceAll, so the
// record count is confirmed before anything is overwritten.
type ImportResult struct {
	Transactions []Transaction
}

// Count returns the number of transactions parsed.
func (r *ImportResult) Count() int { return len(r.Transactions) }

// ExportFilename returns the conventional download name for an export
// produced today, e.g. "transactions_2025-08-31.csv".
func ExportFilename(ext string) string {
	return fmt.Sprintf("transactions_%s.%s", Today(), ext)
}

// ExportCSV writes the ledger to 'w' in the delimited-text format, one
// row per transaction in ledger order. Fields containing the delimiter,
// quotes or newlines are quoted with doubled-quote escaping, so the
// output always round-trips through ImportCSV.
func ExportCSV(w io.Writer, l *Ledger) error {
	withCategory := len(l.Categories()) > 0

	cw := csv.NewWriter(w)
	header := csvColumns
	if withCategory {
		header = append(append([]string{}, csvColumns...), categoryColumn)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	for _, tx := range l.Transactions(AcceptAll) {
		row := []string{
			tx.Date.String(),
			tx.Amount.String(),
			string(tx.Type),
			tx.Account.Label(),
			tx.Reason,
		}
		if withCategory {
			row = append(row, tx.Category)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write transaction %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses the delimited-text format back into transactions.
//
// The parse is all-or-nothing: a row whose date or amount cannot be read
// fails the whole import and the caller's ledger is left untouched.
// Type and Account are matched the way the legacy format did: anything
// that is not exactly "income" reads as expense, anything that is not
// exactly the Account 1 label reads as account2. Every imported row gets
// a fresh ID, the IDs in the source file are never preserved.
func ImportCSV(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows carry 5 or 6 fields depending on the Category column

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("cannot parse file: no header row")
	}

	result := &ImportResult{}
	for i, record := range records[1:] { // skip the header row
		if len(record) < len(csvColumns) {
			return nil, fmt.Errorf("row %d: expected at least %d columns, got %d", i+2, len(csvColumns), len(record))
		}

		day, err := ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		amount, err := ParseAmount(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		typ := Expense
		if record[2] == string(Income) {
			typ = Income
		}

		tx := Transaction{
			ID:      uuid.NewString(),
			Date:    day,
			Amount:  amount,
			Reason:  record[4],
			Type:    typ,
			Account: AccountFromLabel(record[3]),
		}
		if len(record) > len(csvColumns) {
			tx.Category = record[5]
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}
