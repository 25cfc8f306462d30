package report

import (
	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// CategorySpend is one entry of the category-weighted breakdown series.
type CategorySpend struct {
	Category entity.Category
	Total    decimal.Decimal
}

// ComputeCategorySpend rolls up expense amounts by category. Categories with
// no expense transactions are absent from the result rather than present with
// a zero value; absent entries render as empty chart slices, which is
// intentional. Entries appear in the order categories are first encountered
// in the snapshot; consumers must not rely on a particular order.
func ComputeCategorySpend(transactions []entity.Transaction) []CategorySpend {
	totals := make(map[entity.Category]decimal.Decimal)
	var order []entity.Category

	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	series := make([]CategorySpend, 0, len(order))
	for _, c := range order {
		series = append(series, CategorySpend{Category: c, Total: totals[c]})
	}
	return series
}

// categoryExpenseTotal sums expense amounts for a single category.
func categoryExpenseTotal(category entity.Category, transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.Category == category {
			total = total.Add(t.Amount)
		}
	}
	return total
}
