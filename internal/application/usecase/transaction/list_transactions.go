// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
}

// ListTransactionsUseCase returns the transaction history.
type ListTransactionsUseCase struct {
	store adapter.TransactionStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.TransactionStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{store: store}
}

// Execute returns a snapshot of all transactions, most recent first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: snapshot}, nil
}
