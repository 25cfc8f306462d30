// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// ReceiptDraft is the structured result of a receipt extraction. Every field
// is required: an extraction that cannot fill all of them fails instead of
// returning partial data.
type ReceiptDraft struct {
	Amount   decimal.Decimal
	Merchant string
	Date     string // calendar date, entity.DateLayout
	Category string // constrained to the supplied vocabulary
}

// InsightGateway is the external AI provider boundary. Availability, latency
// and error modes are external; callers decide how failures degrade.
type InsightGateway interface {
	// RequestInsights asks the provider for short, actionable budget insights
	// based on a read-only snapshot of transactions and goals.
	RequestInsights(ctx context.Context, transactions []entity.Transaction, budgets []entity.BudgetGoal) ([]string, error)

	// ExtractReceipt asks the provider to parse a receipt image into a draft
	// transaction. The returned category is guaranteed to be one of
	// validCategories. Empty or unparseable provider responses fail.
	ExtractReceipt(ctx context.Context, imageData []byte, mimeType string, validCategories []string) (*ReceiptDraft, error)

	// IsAvailable checks if the gateway is configured.
	IsAvailable() bool
}
