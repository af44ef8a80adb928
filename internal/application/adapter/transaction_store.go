// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// TransactionStore defines the interface for the session's working set of
// transactions. One dataset is owned by one session at a time; loading a new
// dataset replaces the previous one wholesale.
type TransactionStore interface {
	// Replace swaps in a fully validated dataset and returns the count loaded.
	Replace(ctx context.Context, transactions []*entity.Transaction) (int, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// All retrieves the dataset in ingestion order.
	All(ctx context.Context) ([]*entity.Transaction, error)

	// Count returns the number of transactions in the dataset.
	Count(ctx context.Context) (int, error)

	// SetCategory assigns a transaction to a category and records whether the
	// assignment is a manual override.
	SetCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID, override bool) error

	// ReassignCategory moves every transaction from one category to another,
	// clearing override flags when clearOverride is set. Returns the count of
	// affected transactions.
	ReassignCategory(ctx context.Context, from, to uuid.UUID, clearOverride bool) (int, error)
}
