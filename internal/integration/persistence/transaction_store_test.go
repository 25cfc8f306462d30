package persistence

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/persistence/model"
)

var testDBCounter atomic.Int64

// newTestDB opens a named in-memory database. cache=shared keeps every pool
// connection on the same database; the counter isolates tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.StorageEntryModel{}); err != nil {
		t.Fatalf("migrating storage table: %v", err)
	}
	return db
}

func newTestStore(t *testing.T, db *gorm.DB) adapter.TransactionStore {
	t.Helper()
	store, err := NewTransactionStore(db)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func TestTransactionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("appends land at the head", func(t *testing.T) {
		store := newTestStore(t, newTestDB(t))

		first := entity.NewTransaction(decimal.NewFromInt(10), entity.CategoryOutros, "first", "2024-01-01", entity.TransactionTypeExpense)
		second := entity.NewTransaction(decimal.NewFromInt(20), entity.CategoryOutros, "second", "2024-01-02", entity.TransactionTypeExpense)
		for _, txn := range []*entity.Transaction{first, second} {
			if err := store.Append(ctx, txn); err != nil {
				t.Fatalf("append: %v", err)
			}
		}

		snapshot, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if len(snapshot) != 2 || snapshot[0].ID != second.ID || snapshot[1].ID != first.ID {
			t.Errorf("snapshot order wrong: %+v", snapshot)
		}
	})

	t.Run("ledger survives a reopen", func(t *testing.T) {
		db := newTestDB(t)
		store := newTestStore(t, db)

		txn := entity.NewTransaction(decimal.NewFromFloat(42.90), entity.CategoryFarmacia, "remédio", "2024-03-15", entity.TransactionTypeExpense)
		if err := store.Append(ctx, txn); err != nil {
			t.Fatalf("append: %v", err)
		}

		reopened := newTestStore(t, db)
		snapshot, err := reopened.Snapshot(ctx)
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if len(snapshot) != 1 {
			t.Fatalf("reopened ledger has %d records, want 1", len(snapshot))
		}
		got := snapshot[0]
		if got.ID != txn.ID || got.Category != txn.Category || got.Date != txn.Date || got.Type != txn.Type {
			t.Errorf("reloaded record = %+v, want %+v", got, *txn)
		}
		if !got.Amount.Equal(txn.Amount) {
			t.Errorf("reloaded amount = %s, want %s", got.Amount, txn.Amount)
		}
	})

	t.Run("remove deletes by id and persists", func(t *testing.T) {
		db := newTestDB(t)
		store := newTestStore(t, db)

		keep := entity.NewTransaction(decimal.NewFromInt(10), entity.CategoryOutros, "keep", "2024-01-01", entity.TransactionTypeExpense)
		drop := entity.NewTransaction(decimal.NewFromInt(20), entity.CategoryOutros, "drop", "2024-01-02", entity.TransactionTypeExpense)
		for _, txn := range []*entity.Transaction{keep, drop} {
			if err := store.Append(ctx, txn); err != nil {
				t.Fatalf("append: %v", err)
			}
		}

		if err := store.Remove(ctx, drop.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}

		reopened := newTestStore(t, db)
		snapshot, err := reopened.Snapshot(ctx)
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if len(snapshot) != 1 || snapshot[0].ID != keep.ID {
			t.Errorf("snapshot after remove = %+v, want only %s", snapshot, keep.ID)
		}
	})

	t.Run("removing an unknown id is a no-op", func(t *testing.T) {
		store := newTestStore(t, newTestDB(t))

		txn := entity.NewTransaction(decimal.NewFromInt(10), entity.CategoryOutros, "only", "2024-01-01", entity.TransactionTypeExpense)
		if err := store.Append(ctx, txn); err != nil {
			t.Fatalf("append: %v", err)
		}

		other := entity.NewTransaction(decimal.NewFromInt(1), entity.CategoryOutros, "other", "2024-01-01", entity.TransactionTypeExpense)
		if err := store.Remove(ctx, other.ID); err != nil {
			t.Fatalf("remove of unknown id: %v", err)
		}

		snapshot, _ := store.Snapshot(ctx)
		if len(snapshot) != 1 {
			t.Errorf("no-op remove changed the ledger: %+v", snapshot)
		}
	})

	t.Run("snapshot copies are isolated", func(t *testing.T) {
		store := newTestStore(t, newTestDB(t))

		txn := entity.NewTransaction(decimal.NewFromInt(10), entity.CategoryOutros, "only", "2024-01-01", entity.TransactionTypeExpense)
		if err := store.Append(ctx, txn); err != nil {
			t.Fatalf("append: %v", err)
		}

		snapshot, _ := store.Snapshot(ctx)
		snapshot[0].Description = "mutated"

		fresh, _ := store.Snapshot(ctx)
		if fresh[0].Description != "only" {
			t.Error("snapshot mutation leaked into the store")
		}
	})
}
