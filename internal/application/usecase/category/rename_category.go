// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// RenameCategoryInput represents the input for category renaming.
type RenameCategoryInput struct {
	OldName string
	NewName string
}

// RenameCategoryOutput represents the output of category renaming.
type RenameCategoryOutput struct {
	Category *entity.Category
}

// RenameCategoryUseCase handles category renaming. Transactions reference
// categories by stable ID, so a rename only changes the display attribute and
// never requires touching the store.
type RenameCategoryUseCase struct {
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(registry adapter.CategoryRegistry, rulebook adapter.RulebookRepository) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the category renaming.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	category, err := uc.registry.FindByName(ctx, input.OldName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %q not found", input.OldName),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryReserved,
			"the default category cannot be renamed",
			domainerror.ErrCategoryReserved,
		)
	}

	newName, err := ValidateName(input.NewName)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(newName, entity.DefaultCategoryName) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("%q is the reserved default category", entity.DefaultCategoryName),
			domainerror.ErrCategoryNameExists,
		)
	}

	// A case-only rename of the same category is allowed.
	if !strings.EqualFold(newName, category.Name) {
		exists, err := uc.registry.ExistsByName(ctx, newName)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
	}

	category.Name = newName
	category.UpdatedAt = time.Now().UTC()

	if err := uc.registry.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	return &RenameCategoryOutput{
		Category: category,
	}, nil
}
