package fintrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// this file contains the spreadsheet generation of the tabular codec.
// Same column layout as the delimited format, one worksheet.

// SheetName is the single worksheet holding the transaction table.
const SheetName = "Transactions"

// ExportXLSX writes the ledger to 'w' as a spreadsheet with one sheet
// named "Transactions" and the same column layout as the CSV format.
func ExportXLSX(w io.Writer, l *Ledger) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}

	withCategory := len(l.Categories()) > 0
	header := csvColumns
	if withCategory {
		header = append(append([]string{}, csvColumns...), categoryColumn)
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	row := 2
	for _, tx := range l.Transactions(AcceptAll) {
		values := []string{
			tx.Date.String(),
			tx.Amount.String(),
			string(tx.Type),
			tx.Account.Label(),
			tx.Reason,
		}
		if withCategory {
			values = append(values, tx.Category)
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write spreadsheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("cannot set cell %s: %w", cell, err)
		}
	}
	return nil
}

// ImportXLSX parses the spreadsheet format back into transactions.
//
// Spreadsheet cells are loosely typed, so each field is defaulted on its
// own rather than failing the row: a missing date reads as today, a
// missing or unreadable amount reads as 0, the type is income only when
// the cell is exactly "income", the account is account1 only when the
// cell is exactly the Account 1 label, and a missing reason reads as
// "Imported transaction". Only a structurally broken file (not a
// spreadsheet, no "Transactions" sheet) is a hard error. As with CSV,
// every row gets a fresh ID.
func ImportXLSX(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", SheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", SheetName)
	}

	result := &ImportResult{}
	for _, row := range rows[1:] { // skip the header row
		if isBlankRow(row) {
			continue
		}
		day := Today()
		if d, err := ParseDate(cellAt(row, 0)); err == nil {
			day = d
		}
		amount, err := ParseAmount(cellAt(row, 1))
		if err != nil {
			amount = A(0)
		}
		typ := Expense
		if cellAt(row, 2) == string(Income) {
			typ = Income
		}
		reason := cellAt(row, 4)
		if reason == "" {
			reason = "Imported transaction"
		}

		result.Transactions = append(result.Transactions, Transaction{
			ID:       uuid.NewString(),
			Date:     day,
			Amount:   amount,
			Reason:   reason,
			Type:     typ,
			Account:  AccountFromLabel(cellAt(row, 3)),
			Category: cellAt(row, 5),
		})
	}
	return result, nil
}

// cellAt reads a cell by index, tolerating the short rows GetRows
// produces when trailing cells are empty.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
