// Package fintrack provides the ledger engine for a small local-first
// personal-finance tracker: two fixed accounts, income and expense
// transactions, and nothing stored anywhere but the user's own disk.
//
// The core functionalities include:
//   - Ledger Management: an ordered in-memory collection of transactions
//     with add, update, delete and wholesale replacement, mirrored to a
//     pluggable blob store after every mutation on a best-effort basis.
//   - Balance Calculation: signed per-account and total balances derived
//     on demand from the collection, using exact decimal arithmetic.
//   - Filtering and Search: derived views of the collection by type,
//     account, category and free text, combined with logical AND.
//   - Tabular Interchange: a codec pair converting the ledger to and
//     from CSV and spreadsheet files, with RFC-4180 quoting and
//     field-level defaulting on loosely-typed spreadsheet rows.
//
// This package serves as the foundational logic for the `fin`
// command-line tool.
package fintrack
