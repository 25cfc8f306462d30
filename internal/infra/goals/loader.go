// Package goals loads the budget goal configuration.
package goals

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// goalRecord is the JSON shape of one configured limit. Limit accepts both
// numbers and numeric strings.
type goalRecord struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// Load returns the budget goal set. When path is empty the built-in defaults
// apply; otherwise the file must parse and validate, a broken override is a
// startup error rather than a silent fallback.
func Load(path string) (*entity.BudgetGoalSet, error) {
	if path == "" {
		set, err := entity.NewBudgetGoalSet(entity.DefaultBudgetGoals())
		if err != nil {
			return nil, fmt.Errorf("invalid built-in budget goals: %w", err)
		}
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read budget goals file: %w", err)
	}

	var records []goalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse budget goals file: %w", err)
	}

	goals := make([]entity.BudgetGoal, 0, len(records))
	for _, r := range records {
		goals = append(goals, entity.BudgetGoal{
			Category: entity.Category(r.Category),
			Limit:    r.Limit,
		})
	}

	set, err := entity.NewBudgetGoalSet(goals)
	if err != nil {
		return nil, fmt.Errorf("invalid budget goals file: %w", err)
	}
	return set, nil
}
