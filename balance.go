package fintrack

// BalanceOf computes the signed balance of one account: income adds,
// expense subtracts. It is a full O(n) sweep of the ledger, recomputed
// on demand; collections stay small enough in personal use that no
// caching or incremental update is warranted.
func (l *Ledger) BalanceOf(account Account) Amount {
	var balance Amount
	for _, tx := range l.Transactions(ByAccount(account)) {
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// TotalBalance is the sum of both account balances.
func (l *Ledger) TotalBalance() Amount {
	return l.BalanceOf(Account1).Add(l.BalanceOf(Account2))
}
