package fintrack

// tx builds a transaction literal for tests, with a fixed id.
func tx(id, day string, amount float64, reason string, typ Type, account Account, category string) Transaction {
	return Transaction{
		ID:       id,
		Date:     MustParseDate(day),
		Amount:   A(amount),
		Reason:   reason,
		Type:     typ,
		Account:  account,
		Category: category,
	}
}
