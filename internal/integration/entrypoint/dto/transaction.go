// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. Description is optional; the category name is substituted
// when it is empty.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"omitempty,max=255"`
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Amount:      txn.Amount.String(),
		Category:    string(txn.Category),
		Description: txn.Description,
		Date:        txn.Date,
		Type:        string(txn.Type),
	}
}

// ToTransactionListResponse converts a transaction slice to the list DTO.
func ToTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, ToTransactionResponse(&transactions[i]))
	}
	return TransactionListResponse{Transactions: responses}
}
