// Package categorize contains rule-matching and categorization use cases.
package categorize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// SetManualCategoryInput represents the input for a manual category assignment.
type SetManualCategoryInput struct {
	TransactionID uuid.UUID
	CategoryName  string
}

// SetManualCategoryOutput represents the output of a manual category assignment.
type SetManualCategoryOutput struct {
	CategoryID uuid.UUID
	// LearnedRule is true when the transaction description was recorded as a
	// new exact-match rule on the target category.
	LearnedRule   bool
	Recategorized Counts
}

// SetManualCategoryUseCase pins a transaction to a category. This is the only
// path that sets the override flag. The description is learned as an
// exact-match rule on the target category, so future imports of the same
// description categorize themselves.
type SetManualCategoryUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewSetManualCategoryUseCase creates a new SetManualCategoryUseCase instance.
func NewSetManualCategoryUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *SetManualCategoryUseCase {
	return &SetManualCategoryUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the manual category assignment.
func (uc *SetManualCategoryUseCase) Execute(ctx context.Context, input SetManualCategoryInput) (*SetManualCategoryOutput, error) {
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

	category, err := uc.registry.FindByName(ctx, input.CategoryName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeUnknownCategory,
				fmt.Sprintf("category %q is not registered", input.CategoryName),
				domainerror.ErrUnknownCategory,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if err := uc.store.SetCategory(ctx, tx.ID, category.ID, true); err != nil {
		return nil, fmt.Errorf("failed to set category: %w", err)
	}

	output := &SetManualCategoryOutput{
		CategoryID: category.ID,
	}

	// Learn the description as an exact rule. Assigning to the default
	// category records nothing: the default is the no-match outcome.
	pattern := entity.NormalizePattern(tx.Description)
	if pattern != "" && !category.IsDefault && !category.HasRule(pattern, true) {
		category.Rules = append(category.Rules, entity.Rule{Pattern: pattern, Exact: true})
		if err := uc.registry.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to record learned rule: %w", err)
		}

		categories, err := uc.registry.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		if err := uc.rulebook.SaveAll(ctx, categories); err != nil {
			return nil, fmt.Errorf("failed to persist rulebook: %w", err)
		}

		// Rule content changed, so the rest of the dataset must be brought
		// back in step before any aggregation read.
		counts, err := Recategorize(ctx, uc.store, uc.registry)
		if err != nil {
			return nil, err
		}
		output.LearnedRule = true
		output.Recategorized = counts
	}

	return output, nil
}
