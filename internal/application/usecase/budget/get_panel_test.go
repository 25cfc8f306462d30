package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/report"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

type staticStore struct {
	transactions []entity.Transaction
}

func (s *staticStore) Append(_ context.Context, txn *entity.Transaction) error {
	s.transactions = append([]entity.Transaction{*txn}, s.transactions...)
	return nil
}

func (s *staticStore) Remove(_ context.Context, _ uuid.UUID) error { return nil }

func (s *staticStore) Snapshot(_ context.Context) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func TestGetPanel(t *testing.T) {
	budgets, err := entity.NewBudgetGoalSet([]entity.BudgetGoal{
		{Category: entity.CategoryFarmacia, Limit: decimal.NewFromInt(6)},
		{Category: entity.CategoryFaxina, Limit: decimal.NewFromInt(890)},
	})
	if err != nil {
		t.Fatalf("building goal set: %v", err)
	}

	store := &staticStore{transactions: []entity.Transaction{
		*entity.NewTransaction(decimal.NewFromInt(50), entity.CategoryFarmacia, "Farmácia", "2024-01-01", entity.TransactionTypeExpense),
		*entity.NewTransaction(decimal.NewFromInt(900), entity.CategoryFaxina, "Faxina", "2024-01-02", entity.TransactionTypeExpense),
	}}

	out, err := NewGetPanelUseCase(store, budgets).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("covers every registry category exactly once", func(t *testing.T) {
		seen := make(map[entity.Category]bool)
		for _, row := range append(out.DailySpend, out.FixedCosts...) {
			if seen[row.Variance.Category] {
				t.Errorf("category %s appears twice", row.Variance.Category)
			}
			seen[row.Variance.Category] = true
		}
		if len(seen) != len(entity.Categories()) {
			t.Errorf("panel covers %d categories, registry has %d", len(seen), len(entity.Categories()))
		}
	})

	t.Run("daily-spend rows classify by percent", func(t *testing.T) {
		for _, row := range out.DailySpend {
			if row.Variance.Category != entity.CategoryFarmacia {
				continue
			}
			if row.Variance.VariancePercent != 733 {
				t.Errorf("Farmácia variance percent = %d, want 733", row.Variance.VariancePercent)
			}
			if row.Status != report.BudgetStatusOver {
				t.Errorf("Farmácia status = %s, want over", row.Status)
			}
			return
		}
		t.Fatal("Farmácia row missing from daily-spend group")
	})

	t.Run("fixed-costs rows classify by absolute variance", func(t *testing.T) {
		for _, row := range out.FixedCosts {
			if row.Variance.Category != entity.CategoryFaxina {
				continue
			}
			if want := decimal.NewFromInt(10); !row.Variance.VarianceAbsolute.Equal(want) {
				t.Errorf("Faxina variance = %s, want %s", row.Variance.VarianceAbsolute, want)
			}
			if row.Status != report.BudgetStatusOver {
				t.Errorf("Faxina status = %s, want over", row.Status)
			}
			return
		}
		t.Fatal("Faxina row missing from fixed-costs group")
	})

	t.Run("untouched category resolves to zero row", func(t *testing.T) {
		for _, row := range out.FixedCosts {
			if row.Variance.Category != entity.CategoryFotografia {
				continue
			}
			if !row.Variance.Limit.IsZero() || !row.Variance.Actual.IsZero() || row.Variance.VariancePercent != 0 {
				t.Errorf("Fotografia row not zero: %+v", row.Variance)
			}
			if row.Status != report.BudgetStatusOn {
				t.Errorf("Fotografia status = %s, want on", row.Status)
			}
			return
		}
		t.Fatal("Fotografia row missing from fixed-costs group")
	})
}
