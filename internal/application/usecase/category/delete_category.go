// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	Name string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	// AffectedTransactions is the count of transactions that were reset to
	// the default category.
	AffectedTransactions int
}

// DeleteCategoryUseCase handles category deletion. Deletion cascades: every
// transaction referencing the category is reset to the default and its
// override flag cleared. Overrides do not survive deletion; they only protect
// against automatic re-matching.
type DeleteCategoryUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.registry.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %q not found", input.Name),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryReserved,
			"the default category cannot be deleted",
			domainerror.ErrCategoryReserved,
		)
	}

	defaultCategory, err := uc.registry.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default category: %w", err)
	}

	affected, err := uc.store.ReassignCategory(ctx, category.ID, defaultCategory.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to reset transactions: %w", err)
	}

	if err := uc.registry.Delete(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	return &DeleteCategoryOutput{
		AffectedTransactions: affected,
	}, nil
}
