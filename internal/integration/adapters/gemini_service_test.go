package adapters

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"

	domainerror "github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/error"
)

func TestResponseText(t *testing.T) {
	wrap := func(text string) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}}},
			},
		}
	}

	t.Run("strips markdown fences", func(t *testing.T) {
		got, err := responseText(wrap("```json\n[\"tip one\"]\n```"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `["tip one"]` {
			t.Errorf("text = %q, want %q", got, `["tip one"]`)
		}
	})

	t.Run("passes plain JSON through", func(t *testing.T) {
		got, err := responseText(wrap(`{"amount": 10}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `{"amount": 10}` {
			t.Errorf("text = %q", got)
		}
	})

	t.Run("rejects an empty response", func(t *testing.T) {
		_, err := responseText(&genai.GenerateContentResponse{})
		if !errors.Is(err, domainerror.ErrEmptyGatewayResponse) {
			t.Errorf("error = %v, want ErrEmptyGatewayResponse", err)
		}
	})

	t.Run("rejects a response with no text part", func(t *testing.T) {
		_, err := responseText(wrap(""))
		if !errors.Is(err, domainerror.ErrEmptyGatewayResponse) {
			t.Errorf("error = %v, want ErrEmptyGatewayResponse", err)
		}
	})
}

func TestParseReceiptResponse(t *testing.T) {
	t.Run("parses a complete draft", func(t *testing.T) {
		draft, err := parseReceiptResponse(`{"amount": 42.90, "merchant": "Drogaria Central", "date": "2024-03-15", "category": "Farmácia"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !draft.Amount.Equal(decimal.NewFromFloat(42.90)) {
			t.Errorf("amount = %s, want 42.9", draft.Amount)
		}
		if draft.Merchant != "Drogaria Central" || draft.Date != "2024-03-15" || draft.Category != "Farmácia" {
			t.Errorf("draft = %+v", draft)
		}
	})

	t.Run("rejects a draft missing the category", func(t *testing.T) {
		_, err := parseReceiptResponse(`{"amount": 42.90, "merchant": "Drogaria Central", "date": "2024-03-15"}`)
		if !errors.Is(err, domainerror.ErrIncompleteReceiptDraft) {
			t.Errorf("error = %v, want ErrIncompleteReceiptDraft", err)
		}
	})

	t.Run("rejects a draft missing the amount", func(t *testing.T) {
		_, err := parseReceiptResponse(`{"merchant": "Loja", "date": "2024-03-15", "category": "Outros"}`)
		if !errors.Is(err, domainerror.ErrIncompleteReceiptDraft) {
			t.Errorf("error = %v, want ErrIncompleteReceiptDraft", err)
		}
	})

	t.Run("rejects non-JSON content", func(t *testing.T) {
		_, err := parseReceiptResponse("the receipt shows a total of R$ 42,90")
		if !errors.Is(err, domainerror.ErrMalformedGatewayResponse) {
			t.Errorf("error = %v, want ErrMalformedGatewayResponse", err)
		}
	})
}

func TestGeminiServiceAvailability(t *testing.T) {
	if NewGeminiService("").IsAvailable() {
		t.Error("service with no API key reports available")
	}
	if !NewGeminiService("key").IsAvailable() {
		t.Error("configured service reports unavailable")
	}
}
