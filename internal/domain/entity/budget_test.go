package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewBudgetGoalSet(t *testing.T) {
	t.Run("accepts a valid goal list", func(t *testing.T) {
		set, err := NewBudgetGoalSet([]BudgetGoal{
			{Category: CategoryPet, Limit: decimal.NewFromInt(4)},
			{Category: CategoryAuto, Limit: decimal.Zero},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.NewFromInt(4); !set.LimitFor(CategoryPet).Equal(want) {
			t.Errorf("Pet limit = %s, want %s", set.LimitFor(CategoryPet), want)
		}
		if !set.LimitFor(CategoryAuto).IsZero() {
			t.Errorf("Auto limit = %s, want 0", set.LimitFor(CategoryAuto))
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, err := NewBudgetGoalSet([]BudgetGoal{
			{Category: Category("Jardinagem"), Limit: decimal.NewFromInt(10)},
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		_, err := NewBudgetGoalSet([]BudgetGoal{
			{Category: CategoryPet, Limit: decimal.NewFromInt(-1)},
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("rejects duplicate categories", func(t *testing.T) {
		_, err := NewBudgetGoalSet([]BudgetGoal{
			{Category: CategoryPet, Limit: decimal.NewFromInt(4)},
			{Category: CategoryPet, Limit: decimal.NewFromInt(8)},
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("missing category has a zero limit", func(t *testing.T) {
		set, err := NewBudgetGoalSet(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !set.LimitFor(CategoryFarmacia).IsZero() {
			t.Error("empty set must report zero limits")
		}
	})

	t.Run("goals preserve configuration order", func(t *testing.T) {
		input := []BudgetGoal{
			{Category: CategoryAuto, Limit: decimal.NewFromInt(1)},
			{Category: CategoryPet, Limit: decimal.NewFromInt(2)},
			{Category: CategoryContas, Limit: decimal.NewFromInt(3)},
		}
		set, err := NewBudgetGoalSet(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		goals := set.Goals()
		if len(goals) != len(input) {
			t.Fatalf("got %d goals, want %d", len(goals), len(input))
		}
		for i := range input {
			if goals[i].Category != input[i].Category || !goals[i].Limit.Equal(input[i].Limit) {
				t.Errorf("goal %d = %+v, want %+v", i, goals[i], input[i])
			}
		}
	})
}

func TestDefaultBudgetGoals(t *testing.T) {
	set, err := NewBudgetGoalSet(DefaultBudgetGoals())
	if err != nil {
		t.Fatalf("built-in goals must validate: %v", err)
	}
	if len(set.Goals()) != len(Categories()) {
		t.Errorf("built-in goals cover %d categories, registry has %d", len(set.Goals()), len(Categories()))
	}
}
