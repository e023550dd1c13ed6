package fintrack

import (
	"testing"
)

func TestLedger_AddPrepends(t *testing.T) {
	l := NewLedger()
	first := tx("a", "2025-01-10", 100, "first", Expense, Account1, "")
	second := tx("b", "2025-01-11", 200, "second", Income, Account2, "")

	l.Add(first)
	l.Add(second)

	got := l.Slice()
	if len(got) != 2 {
		t.Fatalf("Len() = %d, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("ledger order = [%s %s], want newest first [b a]", got[0].ID, got[1].ID)
	}
}

func TestLedger_Update(t *testing.T) {
	original := tx("a", "2025-01-10", 100, "lunch", Expense, Account1, "")

	t.Run("existing id is replaced in place", func(t *testing.T) {
		l := NewLedger(original, tx("b", "2025-01-11", 50, "coffee", Expense, Account1, ""))

		edited := original
		edited.Amount = A(120)
		edited.Reason = "long lunch"

		if !l.Update(edited) {
			t.Fatal("Update() = false, want true")
		}
		got, _ := l.Get("a")
		if !got.Equal(edited) {
			t.Errorf("Get(a) = %+v, want %+v", got, edited)
		}
		if l.Len() != 2 {
			t.Errorf("Len() = %d, want 2", l.Len())
		}
	})

	t.Run("unknown id is dropped silently", func(t *testing.T) {
		l := NewLedger(original)
		before := l.Slice()

		ghost := tx("nope", "2025-01-12", 1, "ghost", Income, Account2, "")
		if l.Update(ghost) {
			t.Error("Update() = true for an unknown id, want false")
		}
		after := l.Slice()
		if len(after) != len(before) || !after[0].Equal(before[0]) {
			t.Errorf("ledger changed on unknown-id update: %+v", after)
		}
	})
}

func TestLedger_Remove(t *testing.T) {
	a := tx("a", "2025-01-10", 100, "lunch", Expense, Account1, "")
	b := tx("b", "2025-01-11", 50, "coffee", Expense, Account1, "")

	t.Run("existing id", func(t *testing.T) {
		l := NewLedger(a, b)
		l.Remove("a")
		if l.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", l.Len())
		}
		if _, ok := l.Get("a"); ok {
			t.Error("Get(a) found a removed transaction")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := NewLedger(a, b)
		l.Remove("nope")
		if l.Len() != 2 {
			t.Errorf("Len() = %d, want 2", l.Len())
		}
	})
}

func TestLedger_ReplaceAll(t *testing.T) {
	l := NewLedger(
		tx("a", "2025-01-10", 100, "lunch", Expense, Account1, ""),
		tx("b", "2025-01-11", 50, "coffee", Expense, Account1, ""),
	)

	replacement := []Transaction{
		tx("x", "2025-02-01", 1000, "salary", Income, Account2, ""),
	}
	l.ReplaceAll(replacement)

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if _, ok := l.Get("a"); ok {
		t.Error("old transaction survived ReplaceAll")
	}
	if _, ok := l.Get("x"); !ok {
		t.Error("replacement transaction missing after ReplaceAll")
	}
}

func TestLedger_TransactionsPredicates(t *testing.T) {
	l := NewLedger(
		tx("a", "2025-01-10", 100, "lunch", Expense, Account1, ""),
		tx("b", "2025-01-11", 1000, "salary", Income, Account2, ""),
		tx("c", "2025-01-12", 50, "coffee", Expense, Account2, ""),
	)

	var ids []string
	for _, each := range l.Transactions(ByType(Expense)) {
		ids = append(ids, each.ID)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Errorf("Transactions(ByType(Expense)) ids = %v, want [a c]", ids)
	}

	count := 0
	for range l.Transactions(ByAccount(Account2)) {
		count++
	}
	if count != 2 {
		t.Errorf("Transactions(ByAccount(Account2)) yielded %d, want 2", count)
	}
}
