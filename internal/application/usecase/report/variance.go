package report

import (
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// BudgetStatus is the three-way classification of spend against budget.
type BudgetStatus string

const (
	BudgetStatusOver  BudgetStatus = "over"
	BudgetStatusUnder BudgetStatus = "under"
	BudgetStatusOn    BudgetStatus = "on"
)

// Variance holds the budget-variance metrics for one category.
type Variance struct {
	Category entity.Category
	Limit    decimal.Decimal
	Actual   decimal.Decimal

	// VarianceAbsolute is Actual - Limit.
	VarianceAbsolute decimal.Decimal

	// VariancePercent is ((Actual-Limit)/Limit)*100 rounded to the nearest
	// integer, half away from zero. When Limit is zero it is 100 for any
	// positive Actual and 0 otherwise, so unbudgeted spend always reads as
	// fully over without dividing by zero.
	VariancePercent int64
}

var hundred = decimal.NewFromInt(100)

// ComputeVariance computes the variance metrics for a category against the
// goal set. It is total over the registry: categories with no goal resolve to
// a zero limit and categories with no transactions to a zero actual.
func ComputeVariance(category entity.Category, transactions []entity.Transaction, budgets *entity.BudgetGoalSet) Variance {
	limit := budgets.LimitFor(category)
	actual := categoryExpenseTotal(category, transactions)
	absolute := actual.Sub(limit)

	var percent int64
	if limit.IsZero() {
		if actual.IsPositive() {
			percent = 100
		}
	} else {
		// decimal.Round rounds half away from zero, the pinned tie rule.
		percent = absolute.Div(limit).Mul(hundred).Round(0).IntPart()
	}

	return Variance{
		Category:         category,
		Limit:            limit,
		Actual:           actual,
		VarianceAbsolute: absolute,
		VariancePercent:  percent,
	}
}

// PercentStatus classifies the percentage variance: positive is over budget,
// negative under, zero on budget.
func (v Variance) PercentStatus() BudgetStatus {
	switch {
	case v.VariancePercent > 0:
		return BudgetStatusOver
	case v.VariancePercent < 0:
		return BudgetStatusUnder
	default:
		return BudgetStatusOn
	}
}

// AbsoluteStatus classifies the absolute variance. Report groupings that use
// absolute figures apply the same three-way convention independently of the
// percentage classification.
func (v Variance) AbsoluteStatus() BudgetStatus {
	switch v.VarianceAbsolute.Sign() {
	case 1:
		return BudgetStatusOver
	case -1:
		return BudgetStatusUnder
	default:
		return BudgetStatusOn
	}
}
