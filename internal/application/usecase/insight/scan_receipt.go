// Package insight contains AI insight and receipt extraction use cases.
package insight

import (
	"context"
	"fmt"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	domainerror "github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/error"
)

// ScanReceiptInput represents the input for receipt extraction.
type ScanReceiptInput struct {
	ImageData []byte
	MimeType  string
}

// ScanReceiptUseCase extracts a draft transaction from a receipt image. The
// draft is returned for review, nothing is committed here. Unlike insights,
// extraction failures propagate: there is no safe default transaction to
// fabricate.
type ScanReceiptUseCase struct {
	gateway adapter.InsightGateway
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(gateway adapter.InsightGateway) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{gateway: gateway}
}

// Execute performs the extraction and validates the draft against the
// category registry and date format.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*adapter.ReceiptDraft, error) {
	if !uc.gateway.IsAvailable() {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayUnavailable,
			"extraction gateway is not configured",
			domainerror.ErrGatewayUnavailable,
		)
	}

	draft, err := uc.gateway.ExtractReceipt(ctx, input.ImageData, input.MimeType, entity.CategoryNames())
	if err != nil {
		return nil, fmt.Errorf("receipt extraction failed: %w", err)
	}

	if !entity.Category(draft.Category).IsValid() {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeDraftCategoryNotInVocab,
			fmt.Sprintf("extracted category %q is not in the vocabulary", draft.Category),
			domainerror.ErrDraftCategoryNotInVocabulary,
		)
	}

	if !entity.ValidateDate(draft.Date) {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeMalformedResponse,
			fmt.Sprintf("extracted date %q is not a calendar date", draft.Date),
			domainerror.ErrMalformedGatewayResponse,
		)
	}

	if draft.Amount.IsNegative() {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeMalformedResponse,
			"extracted amount is negative",
			domainerror.ErrMalformedGatewayResponse,
		)
	}

	return draft, nil
}
