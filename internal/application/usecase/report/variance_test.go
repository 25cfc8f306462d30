package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

func mustGoalSet(t *testing.T, goals []entity.BudgetGoal) *entity.BudgetGoalSet {
	t.Helper()
	set, err := entity.NewBudgetGoalSet(goals)
	if err != nil {
		t.Fatalf("building goal set: %v", err)
	}
	return set
}

func TestComputeVariance(t *testing.T) {
	t.Run("category absent from budgets and transactions resolves to zeros", func(t *testing.T) {
		budgets := mustGoalSet(t, nil)

		v := ComputeVariance(entity.CategoryFotografia, nil, budgets)

		if !v.Limit.IsZero() || !v.Actual.IsZero() || !v.VarianceAbsolute.IsZero() || v.VariancePercent != 0 {
			t.Errorf("expected all-zero variance, got %+v", v)
		}
		if v.PercentStatus() != BudgetStatusOn || v.AbsoluteStatus() != BudgetStatusOn {
			t.Errorf("expected on-budget status, got %s/%s", v.PercentStatus(), v.AbsoluteStatus())
		}
	})

	t.Run("zero limit with positive spend is fully over", func(t *testing.T) {
		budgets := mustGoalSet(t, []entity.BudgetGoal{
			{Category: entity.CategoryServicos, Limit: decimal.Zero},
		})
		snapshot := []entity.Transaction{expense(0.01, entity.CategoryServicos)}

		v := ComputeVariance(entity.CategoryServicos, snapshot, budgets)

		if v.VariancePercent != 100 {
			t.Errorf("variance percent = %d, want 100", v.VariancePercent)
		}
		if v.PercentStatus() != BudgetStatusOver {
			t.Errorf("status = %s, want over", v.PercentStatus())
		}
	})

	tests := []struct {
		name        string
		limit       float64
		actual      float64
		wantPercent int64
		wantStatus  BudgetStatus
	}{
		{"limit 48 actual 60 rounds to 25", 48, 60, 25, BudgetStatusOver},
		{"under budget is negative", 100, 75, -25, BudgetStatusUnder},
		{"exactly on budget", 50, 50, 0, BudgetStatusOn},
		{"positive tie rounds away from zero", 8, 8.20, 3, BudgetStatusOver},
		{"negative tie rounds away from zero", 8, 7.80, -3, BudgetStatusUnder},
		{"no spend against a budget is fully under", 30, 0, -100, BudgetStatusUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := mustGoalSet(t, []entity.BudgetGoal{
				{Category: entity.CategoryContas, Limit: decimal.NewFromFloat(tt.limit)},
			})
			var snapshot []entity.Transaction
			if tt.actual > 0 {
				snapshot = append(snapshot, expense(tt.actual, entity.CategoryContas))
			}

			v := ComputeVariance(entity.CategoryContas, snapshot, budgets)

			if v.VariancePercent != tt.wantPercent {
				t.Errorf("variance percent = %d, want %d", v.VariancePercent, tt.wantPercent)
			}
			if v.PercentStatus() != tt.wantStatus {
				t.Errorf("status = %s, want %s", v.PercentStatus(), tt.wantStatus)
			}
			if want := decimal.NewFromFloat(tt.actual - tt.limit); !v.VarianceAbsolute.Equal(want) {
				t.Errorf("variance absolute = %s, want %s", v.VarianceAbsolute, want)
			}
		})
	}

	t.Run("absolute status tracks the sign of actual minus limit", func(t *testing.T) {
		budgets := mustGoalSet(t, []entity.BudgetGoal{
			{Category: entity.CategoryFaxina, Limit: decimal.NewFromInt(890)},
		})
		snapshot := []entity.Transaction{expense(900, entity.CategoryFaxina)}

		v := ComputeVariance(entity.CategoryFaxina, snapshot, budgets)

		if v.AbsoluteStatus() != BudgetStatusOver {
			t.Errorf("absolute status = %s, want over", v.AbsoluteStatus())
		}
	})
}

// Mirrors the dashboard end-to-end example: a 50 expense against a limit of 6
// plus unrelated income.
func TestEndToEndAggregates(t *testing.T) {
	snapshot := []entity.Transaction{
		expense(50, entity.CategoryFarmacia),
		income(10, entity.CategoryOutros),
	}
	budgets := mustGoalSet(t, []entity.BudgetGoal{
		{Category: entity.CategoryFarmacia, Limit: decimal.NewFromInt(6)},
	})

	totals := ComputeTotals(snapshot)
	if !totals.Income.Equal(decimal.NewFromInt(10)) ||
		!totals.Expense.Equal(decimal.NewFromInt(50)) ||
		!totals.Balance.Equal(decimal.NewFromInt(-40)) {
		t.Errorf("totals = %+v, want income=10 expense=50 balance=-40", totals)
	}

	v := ComputeVariance(entity.CategoryFarmacia, snapshot, budgets)
	if !v.Limit.Equal(decimal.NewFromInt(6)) {
		t.Errorf("limit = %s, want 6", v.Limit)
	}
	if !v.Actual.Equal(decimal.NewFromInt(50)) {
		t.Errorf("actual = %s, want 50", v.Actual)
	}
	if !v.VarianceAbsolute.Equal(decimal.NewFromInt(44)) {
		t.Errorf("variance absolute = %s, want 44", v.VarianceAbsolute)
	}
	if v.VariancePercent != 733 {
		t.Errorf("variance percent = %d, want 733", v.VariancePercent)
	}
}
