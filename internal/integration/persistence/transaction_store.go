// Package persistence implements the transaction store on a relational
// database.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/persistence/model"
)

// TransactionStorageKey is the storage key the whole ledger is persisted
// under. The value is one JSON array, rewritten on every mutation.
const TransactionStorageKey = "fintrack_transactions"

// storedTransaction is the JSON shape of one ledger record. Amounts are
// plain JSON numbers.
type storedTransaction struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
}

// transactionStore implements adapter.TransactionStore. The ledger is held
// in memory, most recent first, and flushed whole to the storage table on
// every mutation. A mutex serializes mutations so concurrent appends never
// lose records to a read-modify-write race.
type transactionStore struct {
	db *gorm.DB

	mu           sync.Mutex
	transactions []entity.Transaction
}

// NewTransactionStore creates a store backed by db, loading any previously
// persisted ledger.
func NewTransactionStore(db *gorm.DB) (adapter.TransactionStore, error) {
	store := &transactionStore{db: db}
	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load transaction ledger: %w", err)
	}
	return store, nil
}

// Append adds txn to the head of the ledger and persists.
func (s *transactionStore) Append(ctx context.Context, txn *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.Transaction, 0, len(s.transactions)+1)
	next = append(next, *txn)
	next = append(next, s.transactions...)

	if err := s.flush(ctx, next); err != nil {
		return err
	}
	s.transactions = next
	return nil
}

// Remove deletes the transaction with the given id and persists. Removing an
// absent id is a no-op.
func (s *transactionStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.Transaction, 0, len(s.transactions))
	removed := false
	for _, txn := range s.transactions {
		if txn.ID == id {
			removed = true
			continue
		}
		next = append(next, txn)
	}
	if !removed {
		return nil
	}

	if err := s.flush(ctx, next); err != nil {
		return err
	}
	s.transactions = next
	return nil
}

// Snapshot returns a copy of the ledger, most recent first.
func (s *transactionStore) Snapshot(_ context.Context) ([]entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

// load reads the persisted ledger into memory. A missing row means an empty
// ledger, not an error.
func (s *transactionStore) load() error {
	var entry model.StorageEntryModel
	result := s.db.Where("key = ?", TransactionStorageKey).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		return result.Error
	}

	var records []storedTransaction
	if err := json.Unmarshal([]byte(entry.Value), &records); err != nil {
		return fmt.Errorf("corrupt ledger document: %w", err)
	}

	s.transactions = make([]entity.Transaction, 0, len(records))
	for _, r := range records {
		s.transactions = append(s.transactions, entity.Transaction{
			ID:          r.ID,
			Amount:      decimal.NewFromFloat(r.Amount),
			Category:    entity.Category(r.Category),
			Description: r.Description,
			Date:        r.Date,
			Type:        entity.TransactionType(r.Type),
		})
	}
	return nil
}

// flush serializes the whole ledger and upserts it under the storage key.
func (s *transactionStore) flush(ctx context.Context, transactions []entity.Transaction) error {
	records := make([]storedTransaction, 0, len(transactions))
	for _, txn := range transactions {
		amount, _ := txn.Amount.Float64()
		records = append(records, storedTransaction{
			ID:          txn.ID,
			Amount:      amount,
			Category:    string(txn.Category),
			Description: txn.Description,
			Date:        txn.Date,
			Type:        string(txn.Type),
		})
	}

	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize ledger: %w", err)
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.StorageEntryModel{
		Key:   TransactionStorageKey,
		Value: string(value),
	})
	return result.Error
}
