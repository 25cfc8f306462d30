// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/report"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// CategoryBreakdownItem represents a single category slice of the breakdown.
type CategoryBreakdownItem struct {
	Category   entity.Category
	Name       string
	Color      string
	Icon       string
	Amount     decimal.Decimal
	Percentage float64
}

// GetBreakdownOutput represents the output of the category breakdown.
type GetBreakdownOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []CategoryBreakdownItem
}

// GetBreakdownUseCase turns the category spend series into chart slices.
type GetBreakdownUseCase struct {
	store adapter.TransactionStore
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(store adapter.TransactionStore) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{store: store}
}

// Execute computes the expense breakdown by category. Categories without
// expense transactions are absent; their slices are simply not drawn.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context) (*GetBreakdownOutput, error) {
	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	series := report.ComputeCategorySpend(snapshot)
	totalExpenses := report.ComputeTotals(snapshot).Expense

	categories := make([]CategoryBreakdownItem, 0, len(series))
	for _, s := range series {
		var percentage float64
		if !totalExpenses.IsZero() {
			pct := s.Total.Mul(decimal.NewFromInt(100)).Div(totalExpenses)
			percentage, _ = pct.Round(2).Float64()
		}

		info := s.Category.Info()
		categories = append(categories, CategoryBreakdownItem{
			Category:   s.Category,
			Name:       info.Name,
			Color:      info.Color,
			Icon:       info.Icon,
			Amount:     s.Total,
			Percentage: percentage,
		})
	}

	return &GetBreakdownOutput{
		TotalExpenses: totalExpenses,
		Categories:    categories,
	}, nil
}
