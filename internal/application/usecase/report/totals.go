// Package report implements the budget aggregation and variance engine.
// Every function is pure: it takes a snapshot of transactions (and, where
// relevant, budget goals) and returns a freshly computed result. No caching,
// no state between calls; snapshots are small enough that recomputation on
// every change is the design choice.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// Totals holds the all-time financial aggregates over a snapshot.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ComputeTotals sums income and expense amounts over the full snapshot.
// The snapshot is treated as an unordered multiset: order affects only
// display, never totals. An empty snapshot yields all-zero totals.
func ComputeTotals(transactions []entity.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
