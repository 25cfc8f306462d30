// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// ListBudgetsOutput represents the output of listing budget goals.
type ListBudgetsOutput struct {
	Goals []entity.BudgetGoal
}

// ListBudgetsUseCase exposes the configured goal set.
type ListBudgetsUseCase struct {
	budgets *entity.BudgetGoalSet
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgets *entity.BudgetGoalSet) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgets: budgets}
}

// Execute returns the goal set in configuration order.
func (uc *ListBudgetsUseCase) Execute(_ context.Context) (*ListBudgetsOutput, error) {
	return &ListBudgetsOutput{Goals: uc.budgets.Goals()}, nil
}
