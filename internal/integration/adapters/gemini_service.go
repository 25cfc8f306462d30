// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	domainerror "github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/error"
)

// GeminiService implements the adapter.InsightGateway using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// RequestInsights asks the model for short spending tips grounded on recent
// transactions and the configured budget limits.
func (s *GeminiService) RequestInsights(ctx context.Context, transactions []entity.Transaction, budgets []entity.BudgetGoal) ([]string, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayUnavailable,
			"gemini service is not configured",
			domainerror.ErrGatewayUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt, err := s.buildInsightsPrompt(transactions, budgets)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var insights []string
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeMalformedResponse,
			fmt.Sprintf("failed to parse insights JSON: %v", err),
			domainerror.ErrMalformedGatewayResponse,
		)
	}
	return insights, nil
}

// insightTransaction is the JSON shape of a transaction shared with the model.
type insightTransaction struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
}

// insightBudget is the JSON shape of a budget limit shared with the model.
type insightBudget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// buildInsightsPrompt creates the insights prompt.
func (s *GeminiService) buildInsightsPrompt(transactions []entity.Transaction, budgets []entity.BudgetGoal) (string, error) {
	txns := make([]insightTransaction, 0, len(transactions))
	for _, txn := range transactions {
		amount, _ := txn.Amount.Float64()
		txns = append(txns, insightTransaction{
			Amount:      amount,
			Category:    string(txn.Category),
			Description: txn.Description,
			Date:        txn.Date,
			Type:        string(txn.Type),
		})
	}
	txnJSON, err := json.Marshal(txns)
	if err != nil {
		return "", fmt.Errorf("failed to serialize transactions: %w", err)
	}

	limits := make([]insightBudget, 0, len(budgets))
	for _, goal := range budgets {
		limit, _ := goal.Limit.Float64()
		limits = append(limits, insightBudget{
			Category: string(goal.Category),
			Limit:    limit,
		})
	}
	budgetJSON, err := json.Marshal(limits)
	if err != nil {
		return "", fmt.Errorf("failed to serialize budgets: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("I have the following budget transactions:\n")
	sb.Write(txnJSON)
	sb.WriteString("\n\nAnd the following monthly budget limits:\n")
	sb.Write(budgetJSON)
	sb.WriteString(`

Please provide 3-4 short, actionable insights or tips based on my spending patterns.
Focus on areas where I might be overspending or could save. Keep the tone professional but friendly.
Return only a JSON array of strings.
`)
	return sb.String(), nil
}

// receiptResponse represents the raw extraction response from Gemini.
type receiptResponse struct {
	Amount   *float64 `json:"amount"`
	Merchant *string  `json:"merchant"`
	Date     *string  `json:"date"`
	Category *string  `json:"category"`
}

// ExtractReceipt sends the receipt image to the model and parses the
// structured draft out of its response.
func (s *GeminiService) ExtractReceipt(ctx context.Context, imageData []byte, mimeType string, validCategories []string) (*adapter.ReceiptDraft, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayUnavailable,
			"gemini service is not configured",
			domainerror.ErrGatewayUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount": {
				Type:        genai.TypeNumber,
				Description: "The total amount of the receipt",
			},
			"merchant": {
				Type:        genai.TypeString,
				Description: "The name of the store or merchant",
			},
			"date": {
				Type:        genai.TypeString,
				Description: "The date of the transaction in YYYY-MM-DD format",
			},
			"category": {
				Type:        genai.TypeString,
				Description: "The spending category that best matches the receipt",
				Enum:        validCategories,
			},
		},
		Required: []string{"amount", "merchant", "date", "category"},
	}

	prompt := "Analyze this receipt image and extract the total amount, the name of the store/merchant, the date, and the best matching spending category. Return the data in a structured JSON format."

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: imageData},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseReceiptResponse(text)
}

// parseReceiptResponse parses the extraction JSON and rejects partial drafts.
func parseReceiptResponse(text string) (*adapter.ReceiptDraft, error) {
	var raw receiptResponse
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeMalformedResponse,
			fmt.Sprintf("failed to parse receipt JSON: %v", err),
			domainerror.ErrMalformedGatewayResponse,
		)
	}

	if raw.Amount == nil || raw.Merchant == nil || raw.Date == nil || raw.Category == nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeIncompleteReceiptDraft,
			"extraction response is missing a required field",
			domainerror.ErrIncompleteReceiptDraft,
		)
	}

	return &adapter.ReceiptDraft{
		Amount:   decimal.NewFromFloat(*raw.Amount),
		Merchant: *raw.Merchant,
		Date:     *raw.Date,
		Category: *raw.Category,
	}, nil
}

// responseText pulls the text content out of a Gemini response, stripping any
// markdown code fences the model wraps around JSON.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.NewGatewayError(
			domainerror.ErrCodeEmptyGatewayResponse,
			"empty response from gemini",
			domainerror.ErrEmptyGatewayResponse,
		)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", domainerror.NewGatewayError(
			domainerror.ErrCodeEmptyGatewayResponse,
			"no text content in response",
			domainerror.ErrEmptyGatewayResponse,
		)
	}

	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}
