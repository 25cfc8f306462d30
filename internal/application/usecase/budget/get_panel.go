// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/report"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// dailySpendCategories is the grouping reported in percentage terms.
var dailySpendCategories = []entity.Category{
	entity.CategoryAlimentacao,
	entity.CategorySupermercado,
	entity.CategoryTransporte,
	entity.CategoryFarmacia,
	entity.CategoryPet,
}

// PanelRow is one category row of the variance panel.
type PanelRow struct {
	Variance report.Variance

	// Status uses the percent classification for the daily-spend group and
	// the absolute classification for the fixed-costs group; the two report
	// groupings present variance in different units.
	Status report.BudgetStatus
}

// GetPanelOutput represents the output of the budget variance panel.
type GetPanelOutput struct {
	// DailySpend rows are presented as percentage variance.
	DailySpend []PanelRow
	// FixedCosts rows are presented as absolute variance and cover every
	// registry category outside the daily-spend group.
	FixedCosts []PanelRow
}

// GetPanelUseCase builds the per-category budget variance panel.
type GetPanelUseCase struct {
	store   adapter.TransactionStore
	budgets *entity.BudgetGoalSet
}

// NewGetPanelUseCase creates a new GetPanelUseCase instance.
func NewGetPanelUseCase(store adapter.TransactionStore, budgets *entity.BudgetGoalSet) *GetPanelUseCase {
	return &GetPanelUseCase{
		store:   store,
		budgets: budgets,
	}
}

// Execute computes variance rows for every category in the registry,
// including categories with no goal and no transactions.
func (uc *GetPanelUseCase) Execute(ctx context.Context) (*GetPanelOutput, error) {
	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	daily := make(map[entity.Category]bool, len(dailySpendCategories))
	output := &GetPanelOutput{
		DailySpend: make([]PanelRow, 0, len(dailySpendCategories)),
	}

	for _, c := range dailySpendCategories {
		daily[c] = true
		v := report.ComputeVariance(c, snapshot, uc.budgets)
		output.DailySpend = append(output.DailySpend, PanelRow{
			Variance: v,
			Status:   v.PercentStatus(),
		})
	}

	for _, c := range entity.Categories() {
		if daily[c] {
			continue
		}
		v := report.ComputeVariance(c, snapshot, uc.budgets)
		output.FixedCosts = append(output.FixedCosts, PanelRow{
			Variance: v,
			Status:   v.AbsoluteStatus(),
		})
	}

	return output, nil
}
