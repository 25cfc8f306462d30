// Package insight contains AI insight and receipt extraction use cases.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// InsightTransactionLimit caps how many recent transactions are shared with
// the provider.
const InsightTransactionLimit = 20

// FallbackInsights is returned whenever the provider fails or responds with
// nothing usable. Insights are advisory, never blocking: the user never sees
// a provider error.
var FallbackInsights = []string{
	"Stay mindful of your daily expenses.",
	"Check your subscription services for potential savings.",
	"Great job keeping track of your income!",
}

// GetInsightsOutput represents the output of requesting insights.
type GetInsightsOutput struct {
	Insights []string
	// Fallback reports whether the static list was substituted.
	Fallback bool
	// Cached reports whether the insights came from the cache.
	Cached bool
}

// GetInsightsUseCase requests budget insights from the gateway, degrading to
// the fallback list on any failure.
type GetInsightsUseCase struct {
	store    adapter.TransactionStore
	budgets  *entity.BudgetGoalSet
	gateway  adapter.InsightGateway
	cache    adapter.InsightCache // optional
	cacheTTL time.Duration
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
// cache may be nil when no cache backend is configured.
func NewGetInsightsUseCase(
	store adapter.TransactionStore,
	budgets *entity.BudgetGoalSet,
	gateway adapter.InsightGateway,
	cache adapter.InsightCache,
	cacheTTL time.Duration,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		store:    store,
		budgets:  budgets,
		gateway:  gateway,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute returns insights for the current snapshot. Provider failures are
// recovered locally; only store failures surface as errors.
func (uc *GetInsightsUseCase) Execute(ctx context.Context) (*GetInsightsOutput, error) {
	if uc.cache != nil {
		if insights, ok := uc.cache.Get(ctx); ok {
			return &GetInsightsOutput{Insights: insights, Cached: true}, nil
		}
	}

	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	recent := snapshot
	if len(recent) > InsightTransactionLimit {
		recent = recent[:InsightTransactionLimit]
	}

	insights, err := uc.gateway.RequestInsights(ctx, recent, uc.budgets.Goals())
	if err != nil || len(insights) == 0 {
		if err != nil {
			slog.Warn("Insight gateway failed, substituting fallback insights", "error", err)
		}
		return &GetInsightsOutput{Insights: FallbackInsights, Fallback: true}, nil
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, insights, uc.cacheTTL)
	}

	return &GetInsightsOutput{Insights: insights}, nil
}
