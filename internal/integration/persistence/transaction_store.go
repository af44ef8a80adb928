// Package persistence implements the store, registry and rulebook interfaces.
package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// transactionStore implements adapter.TransactionStore in memory. The dataset
// lives for one session; there is no row-level deletion, only whole-dataset
// replacement.
type transactionStore struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*entity.Transaction
}

// NewTransactionStore creates an empty in-memory transaction store.
func NewTransactionStore() adapter.TransactionStore {
	return &transactionStore{
		byID: make(map[uuid.UUID]*entity.Transaction),
	}
}

// Replace swaps in a fully validated dataset and returns the count loaded.
func (s *transactionStore) Replace(_ context.Context, transactions []*entity.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]uuid.UUID, len(transactions))
	s.byID = make(map[uuid.UUID]*entity.Transaction, len(transactions))
	for i, tx := range transactions {
		clone := tx.Clone()
		clone.Position = i
		s.order[i] = clone.ID
		s.byID[clone.ID] = clone
	}
	return len(transactions), nil
}

// FindByID retrieves a transaction by its ID.
func (s *transactionStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.byID[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx.Clone(), nil
}

// All retrieves the dataset in ingestion order.
func (s *transactionStore) All(_ context.Context) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Transaction, len(s.order))
	for i, id := range s.order {
		out[i] = s.byID[id].Clone()
	}
	return out, nil
}

// Count returns the number of transactions in the dataset.
func (s *transactionStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order), nil
}

// SetCategory assigns a transaction to a category.
func (s *transactionStore) SetCategory(_ context.Context, id uuid.UUID, categoryID uuid.UUID, override bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.byID[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	tx.CategoryID = categoryID
	tx.Override = override
	return nil
}

// ReassignCategory moves every transaction from one category to another.
func (s *transactionStore) ReassignCategory(_ context.Context, from, to uuid.UUID, clearOverride bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected := 0
	for _, id := range s.order {
		tx := s.byID[id]
		if tx.CategoryID != from {
			continue
		}
		tx.CategoryID = to
		if clearOverride {
			tx.Override = false
		}
		affected++
	}
	return affected, nil
}
