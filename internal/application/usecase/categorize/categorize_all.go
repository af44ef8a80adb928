// Package categorize contains rule-matching and categorization use cases.
package categorize

import (
	"context"

	"github.com/xpress-ledger/backend/internal/application/adapter"
)

// CategorizeAllOutput represents the output of a full categorization pass.
type CategorizeAllOutput struct {
	Changed   int
	Unchanged int
	Skipped   int
}

// CategorizeAllUseCase recomputes the category of every transaction that is
// not protected by a manual override.
type CategorizeAllUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewCategorizeAllUseCase creates a new CategorizeAllUseCase instance.
func NewCategorizeAllUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *CategorizeAllUseCase {
	return &CategorizeAllUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the categorization pass.
func (uc *CategorizeAllUseCase) Execute(ctx context.Context) (*CategorizeAllOutput, error) {
	counts, err := Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &CategorizeAllOutput{
		Changed:   counts.Changed,
		Unchanged: counts.Unchanged,
		Skipped:   counts.Skipped,
	}, nil
}
