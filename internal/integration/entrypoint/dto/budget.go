// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/budget"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// BudgetGoalResponse represents one configured budget limit.
type BudgetGoalResponse struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// BudgetListResponse represents the response for listing budget goals.
type BudgetListResponse struct {
	Goals []BudgetGoalResponse `json:"goals"`
}

// PanelRowResponse represents one category row of the budget variance panel.
type PanelRowResponse struct {
	Category        string `json:"category"`
	Limit           string `json:"limit"`
	Actual          string `json:"actual"`
	Variance        string `json:"variance"`
	VariancePercent int64  `json:"variance_percent"`
	Status          string `json:"status"`
}

// BudgetPanelResponse represents the two-group budget variance panel.
type BudgetPanelResponse struct {
	DailySpend []PanelRowResponse `json:"daily_spend"`
	FixedCosts []PanelRowResponse `json:"fixed_costs"`
}

// ToBudgetListResponse converts budget goals to the list DTO.
func ToBudgetListResponse(goals []entity.BudgetGoal) BudgetListResponse {
	responses := make([]BudgetGoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, BudgetGoalResponse{
			Category: string(goal.Category),
			Limit:    goal.Limit.String(),
		})
	}
	return BudgetListResponse{Goals: responses}
}

// ToBudgetPanelResponse converts the panel output to its DTO.
func ToBudgetPanelResponse(output *budget.GetPanelOutput) BudgetPanelResponse {
	return BudgetPanelResponse{
		DailySpend: toPanelRows(output.DailySpend),
		FixedCosts: toPanelRows(output.FixedCosts),
	}
}

func toPanelRows(rows []budget.PanelRow) []PanelRowResponse {
	responses := make([]PanelRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, PanelRowResponse{
			Category:        string(row.Variance.Category),
			Limit:           row.Variance.Limit.String(),
			Actual:          row.Variance.Actual.String(),
			Variance:        row.Variance.VarianceAbsolute.String(),
			VariancePercent: row.Variance.VariancePercent,
			Status:          string(row.Status),
		})
	}
	return responses
}
