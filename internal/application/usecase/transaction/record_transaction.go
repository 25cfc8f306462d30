// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/report"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	domainerror "github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/error"
)

// RecordTransactionInput represents the input for recording a transaction.
// This is the data-entry boundary: everything past it assumes validated data.
type RecordTransactionInput struct {
	Amount      decimal.Decimal
	Category    entity.Category
	Description string
	Date        string
	Type        entity.TransactionType
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase validates and records a new transaction.
type RecordTransactionUseCase struct {
	store       adapter.TransactionStore
	budgets     *entity.BudgetGoalSet
	alertSender adapter.AlertSender // optional
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
// alertSender may be nil when over-budget alerts are not configured.
func NewRecordTransactionUseCase(
	store adapter.TransactionStore,
	budgets *entity.BudgetGoalSet,
	alertSender adapter.AlertSender,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		store:       store,
		budgets:     budgets,
		alertSender: alertSender,
	}
}

// Execute performs the transaction recording.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = input.Category.Info().Name
	}

	txn := entity.NewTransaction(
		input.Amount,
		input.Category,
		description,
		input.Date,
		input.Type,
	)

	if err := uc.store.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if txn.IsExpense() {
		uc.alertIfOverBudget(ctx, txn)
	}

	return &RecordTransactionOutput{Transaction: txn}, nil
}

// validateInput rejects malformed records before they can reach the
// aggregation engine.
func (uc *RecordTransactionUseCase) validateInput(input RecordTransactionInput) error {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative; direction is carried by the type",
			domainerror.ErrNegativeAmount,
		)
	}

	if !input.Category.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("category %q is not registered", input.Category),
			domainerror.ErrUnknownCategory,
		)
	}

	if !entity.ValidateDate(input.Date) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a calendar date in YYYY-MM-DD format",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}

// alertIfOverBudget sends a notification when this expense pushed its category
// past the goal limit. Best-effort: failures are logged, never returned.
func (uc *RecordTransactionUseCase) alertIfOverBudget(ctx context.Context, txn *entity.Transaction) {
	if uc.alertSender == nil {
		return
	}

	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		slog.Debug("Failed to snapshot store for budget alert", "error", err)
		return
	}

	variance := report.ComputeVariance(txn.Category, snapshot, uc.budgets)
	if variance.PercentStatus() != report.BudgetStatusOver {
		return
	}

	// Only alert on the transaction that crossed the limit, not on every
	// subsequent expense in an already-over category.
	if variance.Actual.Sub(txn.Amount).GreaterThan(variance.Limit) {
		return
	}

	alert := adapter.BudgetAlert{
		Category:        txn.Category.Info().Name,
		Limit:           variance.Limit.String(),
		Actual:          variance.Actual.String(),
		VariancePercent: variance.VariancePercent,
	}

	if err := uc.alertSender.SendOverBudgetAlert(ctx, alert); err != nil {
		slog.Warn("Failed to send over-budget alert",
			"category", txn.Category,
			"error", err,
		)
	}
}

// RemoveTransactionInput represents the input for removing a transaction.
type RemoveTransactionInput struct {
	TransactionID uuid.UUID
}

// RemoveTransactionUseCase removes a transaction by id.
type RemoveTransactionUseCase struct {
	store adapter.TransactionStore
}

// NewRemoveTransactionUseCase creates a new RemoveTransactionUseCase instance.
func NewRemoveTransactionUseCase(store adapter.TransactionStore) *RemoveTransactionUseCase {
	return &RemoveTransactionUseCase{store: store}
}

// Execute removes the transaction. Removing an id that does not exist is a
// no-op, not an error.
func (uc *RemoveTransactionUseCase) Execute(ctx context.Context, input RemoveTransactionInput) error {
	if err := uc.store.Remove(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to remove transaction: %w", err)
	}
	return nil
}
