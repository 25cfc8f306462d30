// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BudgetGoal is a per-category monthly spending ceiling. A limit of zero is a
// meaningful value: any spend against it counts as fully over budget.
type BudgetGoal struct {
	Category Category
	Limit    decimal.Decimal
}

// BudgetGoalSet holds at most one goal per category. It is initialized once at
// startup and read-only afterwards.
type BudgetGoalSet struct {
	goals map[Category]decimal.Decimal
	order []Category
}

// NewBudgetGoalSet validates and builds a goal set. It rejects unknown
// categories, negative limits and duplicate category entries.
func NewBudgetGoalSet(goals []BudgetGoal) (*BudgetGoalSet, error) {
	set := &BudgetGoalSet{
		goals: make(map[Category]decimal.Decimal, len(goals)),
		order: make([]Category, 0, len(goals)),
	}

	for _, g := range goals {
		if !g.Category.IsValid() {
			return nil, fmt.Errorf("budget goal references unknown category %q", g.Category)
		}
		if g.Limit.IsNegative() {
			return nil, fmt.Errorf("budget goal for %q has negative limit %s", g.Category, g.Limit)
		}
		if _, exists := set.goals[g.Category]; exists {
			return nil, fmt.Errorf("duplicate budget goal for category %q", g.Category)
		}
		set.goals[g.Category] = g.Limit
		set.order = append(set.order, g.Category)
	}

	return set, nil
}

// LimitFor returns the monthly limit for the category, or zero when no goal
// exists for it.
func (s *BudgetGoalSet) LimitFor(category Category) decimal.Decimal {
	if limit, ok := s.goals[category]; ok {
		return limit
	}
	return decimal.Zero
}

// Goals returns the configured goals in their original order.
func (s *BudgetGoalSet) Goals() []BudgetGoal {
	out := make([]BudgetGoal, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, BudgetGoal{Category: c, Limit: s.goals[c]})
	}
	return out
}

// DefaultBudgetGoals returns the built-in monthly goal set used when no
// budget file is configured.
func DefaultBudgetGoals() []BudgetGoal {
	limit := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []BudgetGoal{
		{Category: CategoryAlimentacao, Limit: limit(48)},
		{Category: CategorySupermercado, Limit: limit(11)},
		{Category: CategoryTransporte, Limit: limit(7)},
		{Category: CategoryFarmacia, Limit: limit(6)},
		{Category: CategoryPet, Limit: limit(4)},
		{Category: CategoryAuto, Limit: limit(1351)},
		{Category: CategoryCursos, Limit: limit(1000)},
		{Category: CategoryAssistencia, Limit: limit(0)},
		{Category: CategoryViagens, Limit: limit(0)},
		{Category: CategoryContas, Limit: limit(450)},
		{Category: CategoryAssinaturas, Limit: limit(908)},
		{Category: CategoryFaxina, Limit: limit(890)},
		{Category: CategoryCompras, Limit: limit(930)},
		{Category: CategoryOutros, Limit: limit(866)},
		{Category: CategoryServicos, Limit: limit(0)},
		{Category: CategoryTabacaria, Limit: limit(0)},
		{Category: CategoryPsicologo, Limit: limit(0)},
		{Category: CategoryFotografia, Limit: limit(0)},
	}
}
