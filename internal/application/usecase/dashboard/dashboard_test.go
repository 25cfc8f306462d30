package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

type fakeStore struct {
	transactions []entity.Transaction
}

func (s *fakeStore) Append(_ context.Context, txn *entity.Transaction) error {
	s.transactions = append([]entity.Transaction{*txn}, s.transactions...)
	return nil
}

func (s *fakeStore) Remove(_ context.Context, _ uuid.UUID) error { return nil }

func (s *fakeStore) Snapshot(_ context.Context) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func seedStore(amounts ...int64) *fakeStore {
	store := &fakeStore{}
	for _, a := range amounts {
		store.transactions = append([]entity.Transaction{
			*entity.NewTransaction(decimal.NewFromInt(a), entity.CategoryPet, "seed", "2024-01-01", entity.TransactionTypeExpense),
		}, store.transactions...)
	}
	return store
}

func TestGetOverview(t *testing.T) {
	t.Run("totals and recent entries", func(t *testing.T) {
		store := &fakeStore{transactions: []entity.Transaction{
			*entity.NewTransaction(decimal.NewFromInt(10), entity.CategoryOutros, "salário", "2024-01-04", entity.TransactionTypeIncome),
			*entity.NewTransaction(decimal.NewFromInt(50), entity.CategoryFarmacia, "remédio", "2024-01-03", entity.TransactionTypeExpense),
		}}

		out, err := NewGetOverviewUseCase(store).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Totals.Income.Equal(decimal.NewFromInt(10)) ||
			!out.Totals.Expense.Equal(decimal.NewFromInt(50)) ||
			!out.Totals.Balance.Equal(decimal.NewFromInt(-40)) {
			t.Errorf("totals = %+v", out.Totals)
		}
		if len(out.Recent) != 2 {
			t.Errorf("recent count = %d, want 2", len(out.Recent))
		}
	})

	t.Run("recent list caps at three entries", func(t *testing.T) {
		out, err := NewGetOverviewUseCase(seedStore(1, 2, 3, 4, 5)).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Recent) != RecentTransactionCount {
			t.Errorf("recent count = %d, want %d", len(out.Recent), RecentTransactionCount)
		}
		// Most recent append wins the first slot.
		if !out.Recent[0].Amount.Equal(decimal.NewFromInt(5)) {
			t.Errorf("recent[0] amount = %s, want 5", out.Recent[0].Amount)
		}
	})
}

func TestGetBreakdown(t *testing.T) {
	t.Run("empty ledger yields an empty breakdown", func(t *testing.T) {
		out, err := NewGetBreakdownUseCase(&fakeStore{}).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.TotalExpenses.IsZero() || len(out.Categories) != 0 {
			t.Errorf("breakdown = %+v", out)
		}
	})

	t.Run("percentages are relative to total expenses", func(t *testing.T) {
		store := &fakeStore{transactions: []entity.Transaction{
			*entity.NewTransaction(decimal.NewFromInt(75), entity.CategoryAlimentacao, "mercado", "2024-01-01", entity.TransactionTypeExpense),
			*entity.NewTransaction(decimal.NewFromInt(25), entity.CategoryPet, "ração", "2024-01-02", entity.TransactionTypeExpense),
			*entity.NewTransaction(decimal.NewFromInt(500), entity.CategoryOutros, "salário", "2024-01-03", entity.TransactionTypeIncome),
		}}

		out, err := NewGetBreakdownUseCase(store).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.TotalExpenses.Equal(decimal.NewFromInt(100)) {
			t.Errorf("total expenses = %s, want 100", out.TotalExpenses)
		}
		if len(out.Categories) != 2 {
			t.Fatalf("category count = %d, want 2", len(out.Categories))
		}

		byCategory := make(map[entity.Category]CategoryBreakdownItem)
		for _, item := range out.Categories {
			byCategory[item.Category] = item
		}
		if got := byCategory[entity.CategoryAlimentacao].Percentage; got != 75 {
			t.Errorf("Alimentação percentage = %v, want 75", got)
		}
		if got := byCategory[entity.CategoryPet].Percentage; got != 25 {
			t.Errorf("Pet percentage = %v, want 25", got)
		}
		if name := byCategory[entity.CategoryPet].Name; name != "Pet" {
			t.Errorf("Pet display name = %q", name)
		}
	})
}
