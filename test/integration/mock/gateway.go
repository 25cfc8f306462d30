package mock

import (
	"context"
	"errors"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// InsightGateway is a scriptable stand-in for the AI provider.
type InsightGateway struct {
	Insights    []string
	Draft       *adapter.ReceiptDraft
	Fail        bool
	Unavailable bool
}

// NewInsightGateway creates a gateway that succeeds with the given insights.
func NewInsightGateway(insights ...string) *InsightGateway {
	return &InsightGateway{Insights: insights}
}

// RequestInsights returns the scripted insights or a scripted failure.
func (g *InsightGateway) RequestInsights(_ context.Context, _ []entity.Transaction, _ []entity.BudgetGoal) ([]string, error) {
	if g.Fail {
		return nil, errors.New("scripted provider failure")
	}
	return g.Insights, nil
}

// ExtractReceipt returns the scripted draft or a scripted failure.
func (g *InsightGateway) ExtractReceipt(_ context.Context, _ []byte, _ string, _ []string) (*adapter.ReceiptDraft, error) {
	if g.Fail {
		return nil, errors.New("scripted provider failure")
	}
	return g.Draft, nil
}

// IsAvailable reports the scripted availability.
func (g *InsightGateway) IsAvailable() bool {
	return !g.Unavailable
}
