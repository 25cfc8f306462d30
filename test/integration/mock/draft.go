package mock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
)

// NewReceiptDraft builds a receipt draft from string fields, for scripting
// extraction scenarios.
func NewReceiptDraft(amount, merchant, date, category string) (*adapter.ReceiptDraft, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid draft amount %q: %w", amount, err)
	}
	return &adapter.ReceiptDraft{
		Amount:   parsed,
		Merchant: merchant,
		Date:     date,
		Category: category,
	}, nil
}
