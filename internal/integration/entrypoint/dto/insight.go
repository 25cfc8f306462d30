// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
)

// InsightsResponse represents the response for requesting insights.
type InsightsResponse struct {
	Insights []string `json:"insights"`
	Fallback bool     `json:"fallback"`
	Cached   bool     `json:"cached"`
}

// ScanReceiptRequest represents the request body for receipt extraction.
// Image carries the receipt as base64.
type ScanReceiptRequest struct {
	Image    string `json:"image" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// ReceiptDraftResponse represents the extracted draft transaction. The draft
// is returned for review; recording it is a separate request.
type ReceiptDraftResponse struct {
	Amount   string `json:"amount"`
	Merchant string `json:"merchant"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// ToReceiptDraftResponse converts a receipt draft to its DTO.
func ToReceiptDraftResponse(draft *adapter.ReceiptDraft) ReceiptDraftResponse {
	return ReceiptDraftResponse{
		Amount:   draft.Amount.String(),
		Merchant: draft.Merchant,
		Date:     draft.Date,
		Category: draft.Category,
	}
}
