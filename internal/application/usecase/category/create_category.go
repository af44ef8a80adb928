// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(registry adapter.CategoryRegistry, rulebook adapter.RulebookRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := ValidateName(input.Name)
	if err != nil {
		return nil, err
	}

	// The reserved name counts as taken even though the clash is implicit.
	if strings.EqualFold(name, entity.DefaultCategoryName) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("%q is the reserved default category", entity.DefaultCategoryName),
			domainerror.ErrCategoryNameExists,
		)
	}

	exists, err := uc.registry.ExistsByName(ctx, name)
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

	category := entity.NewCategory(name, 0)
	if err := uc.registry.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// ValidateName trims a raw category name and rejects empty or oversized names.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name cannot be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameEmpty,
		)
	}
	return name, nil
}

// persistRulebook snapshots the registry into the rulebook store.
func persistRulebook(ctx context.Context, registry adapter.CategoryRegistry, rulebook adapter.RulebookRepository) error {
	categories, err := registry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if err := rulebook.SaveAll(ctx, categories); err != nil {
		return fmt.Errorf("failed to persist rulebook: %w", err)
	}
	return nil
}
