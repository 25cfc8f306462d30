// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/dashboard"
)

// OverviewResponse represents the dashboard headline figures.
type OverviewResponse struct {
	TotalIncome   string                `json:"total_income"`
	TotalExpenses string                `json:"total_expenses"`
	Balance       string                `json:"balance"`
	Recent        []TransactionResponse `json:"recent_transactions"`
}

// BreakdownItemResponse represents one category slice of the expense chart.
type BreakdownItemResponse struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BreakdownResponse represents the expense breakdown by category.
type BreakdownResponse struct {
	TotalExpenses string                  `json:"total_expenses"`
	Categories    []BreakdownItemResponse `json:"categories"`
}

// ToOverviewResponse converts the overview output to its DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	recent := make([]TransactionResponse, 0, len(output.Recent))
	for i := range output.Recent {
		recent = append(recent, ToTransactionResponse(&output.Recent[i]))
	}
	return OverviewResponse{
		TotalIncome:   output.Totals.Income.String(),
		TotalExpenses: output.Totals.Expense.String(),
		Balance:       output.Totals.Balance.String(),
		Recent:        recent,
	}
}

// ToBreakdownResponse converts the breakdown output to its DTO.
func ToBreakdownResponse(output *dashboard.GetBreakdownOutput) BreakdownResponse {
	categories := make([]BreakdownItemResponse, 0, len(output.Categories))
	for _, item := range output.Categories {
		categories = append(categories, BreakdownItemResponse{
			Category:   string(item.Category),
			Name:       item.Name,
			Color:      item.Color,
			Icon:       item.Icon,
			Amount:     item.Amount.String(),
			Percentage: item.Percentage,
		})
	}
	return BreakdownResponse{
		TotalExpenses: output.TotalExpenses.String(),
		Categories:    categories,
	}
}
