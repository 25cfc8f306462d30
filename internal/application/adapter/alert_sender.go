// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BudgetAlert describes a category that has just gone over its limit.
type BudgetAlert struct {
	Category        string
	Limit           string
	Actual          string
	VariancePercent int64
}

// AlertSender delivers over-budget notifications. Sends are best-effort:
// callers log failures and never block a mutation on them.
type AlertSender interface {
	// SendOverBudgetAlert notifies the user that a category exceeded its goal.
	SendOverBudgetAlert(ctx context.Context, alert BudgetAlert) error
}
