// Package categorize contains rule-matching and categorization use cases.
package categorize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// Categorization results for a single transaction.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultSkipped   = "skipped"
)

// CategorizeOneInput represents the input for single-transaction recategorization.
type CategorizeOneInput struct {
	TransactionID uuid.UUID
	// ForceOverrideClear recomputes the category even when the transaction
	// carries a manual override, clearing the override in the process.
	ForceOverrideClear bool
}

// CategorizeOneOutput represents the output of single-transaction recategorization.
type CategorizeOneOutput struct {
	Result     string
	CategoryID uuid.UUID
}

// CategorizeOneUseCase recomputes the category of a single transaction.
type CategorizeOneUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewCategorizeOneUseCase creates a new CategorizeOneUseCase instance.
func NewCategorizeOneUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *CategorizeOneUseCase {
	return &CategorizeOneUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the single-transaction recategorization.
func (uc *CategorizeOneUseCase) Execute(ctx context.Context, input CategorizeOneInput) (*CategorizeOneOutput, error) {
	tx, err := uc.store.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				fmt.Sprintf("transaction not found: %s", input.TransactionID),
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if tx.Override && !input.ForceOverrideClear {
		return &CategorizeOneOutput{
			Result:     ResultSkipped,
			CategoryID: tx.CategoryID,
		}, nil
	}

	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defaultCategory, err := uc.registry.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default category: %w", err)
	}

	target := defaultCategory.ID
	if matched, ok := MatchCategory(tx.Description, categories); ok {
		target = matched
	}

	result := ResultUnchanged
	if target != tx.CategoryID || tx.Override {
		if err := uc.store.SetCategory(ctx, tx.ID, target, false); err != nil {
			return nil, fmt.Errorf("failed to set category: %w", err)
		}
		if target != tx.CategoryID {
			result = ResultChanged
		}
	}

	return &CategorizeOneOutput{
		Result:     result,
		CategoryID: target,
	}, nil
}
