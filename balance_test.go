package fintrack

import "testing"

func TestLedger_BalanceOf(t *testing.T) {
	testCases := []struct {
		name    string
		txs     []Transaction
		account Account
		want    Amount
	}{
		{
			name:    "empty ledger",
			txs:     nil,
			account: Account1,
			want:    A(0),
		},
		{
			name: "single expense is negative",
			txs: []Transaction{
				tx("a", "2024-01-15", 500, "Groceries", Expense, Account1, ""),
			},
			account: Account1,
			want:    A(-500),
		},
		{
			name: "income minus expense",
			txs: []Transaction{
				tx("a", "2024-02-01", 1000, "pay", Income, Account2, ""),
				tx("b", "2024-02-02", 300, "rent", Expense, Account2, ""),
			},
			account: Account2,
			want:    A(700),
		},
		{
			name: "other account is ignored",
			txs: []Transaction{
				tx("a", "2024-02-01", 1000, "pay", Income, Account2, ""),
				tx("b", "2024-02-02", 300, "rent", Expense, Account1, ""),
			},
			account: Account1,
			want:    A(-300),
		},
		{
			name: "decimal amounts stay exact",
			txs: []Transaction{
				tx("a", "2024-03-01", 0.1, "a", Income, Account1, ""),
				tx("b", "2024-03-02", 0.2, "b", Income, Account1, ""),
				tx("c", "2024-03-03", 0.3, "c", Expense, Account1, ""),
			},
			account: Account1,
			want:    A(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger(tc.txs...)
			got := l.BalanceOf(tc.account)
			if !got.Equal(tc.want) {
				t.Errorf("BalanceOf(%s) = %s, want %s", tc.account, got, tc.want)
			}
		})
	}
}

func TestLedger_TotalBalance(t *testing.T) {
	l := NewLedger(
		tx("a", "2024-02-01", 1000, "pay", Income, Account2, ""),
		tx("b", "2024-02-02", 300, "rent", Expense, Account2, ""),
		tx("c", "2024-02-03", 500, "groceries", Expense, Account1, ""),
	)

	want := l.BalanceOf(Account1).Add(l.BalanceOf(Account2))
	if got := l.TotalBalance(); !got.Equal(want) {
		t.Errorf("TotalBalance() = %s, want %s", got, want)
	}
	if got := l.TotalBalance(); !got.Equal(A(200)) {
		t.Errorf("TotalBalance() = %s, want 200", got)
	}
}
