// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DateLayout is the calendar-date format used throughout the system.
// Transactions carry a date, never a time of day.
const DateLayout = "2006-01-02"

// Transaction represents a recorded income or expense event. Transactions are
// immutable once created; the only mutations the system supports are append
// and delete. Amount is always non-negative: the cash-flow direction is
// carried by Type, never by the sign of Amount.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Category    Category
	Description string
	Date        string // calendar date, DateLayout
	Type        TransactionType
}

// NewTransaction creates a new Transaction entity with a fresh identity.
func NewTransaction(
	amount decimal.Decimal,
	category Category,
	description string,
	date string,
	transactionType TransactionType,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Type:        transactionType,
	}
}

// IsExpense reports whether the transaction reduces the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// ValidateDate reports whether date is a well-formed calendar date.
func ValidateDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
