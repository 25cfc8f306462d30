// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/report"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// RecentTransactionCount is the number of latest entries shown on the overview.
const RecentTransactionCount = 3

// GetOverviewOutput represents the output of the dashboard overview.
type GetOverviewOutput struct {
	Totals report.Totals
	Recent []entity.Transaction
}

// GetOverviewUseCase computes the dashboard headline figures.
type GetOverviewUseCase struct {
	store adapter.TransactionStore
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(store adapter.TransactionStore) *GetOverviewUseCase {
	return &GetOverviewUseCase{store: store}
}

// Execute returns all-time totals plus the most recent transactions.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	recent := snapshot
	if len(recent) > RecentTransactionCount {
		recent = recent[:RecentTransactionCount]
	}

	return &GetOverviewOutput{
		Totals: report.ComputeTotals(snapshot),
		Recent: recent,
	}, nil
}
