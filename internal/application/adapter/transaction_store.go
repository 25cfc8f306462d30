// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// TransactionStore owns the ordered collection of recorded transactions.
// Implementations persist the collection after every mutation; a Snapshot
// taken after a completed Append or Remove always reflects that mutation.
type TransactionStore interface {
	// Append records a new transaction at the head of the collection
	// (most-recent-first for user-facing history) and persists the result.
	Append(ctx context.Context, transaction *entity.Transaction) error

	// Remove deletes the transaction with the given id if present and persists
	// the result. Removing an id that is not present is a no-op, not an error.
	Remove(ctx context.Context, id uuid.UUID) error

	// Snapshot returns an immutable point-in-time read of all current
	// transactions, safe for pure computation.
	Snapshot(ctx context.Context) ([]entity.Transaction, error)
}
