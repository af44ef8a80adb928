// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Rules     []entity.Rule
	Position  int
	IsDefault bool
}

// ListCategoriesUseCase lists categories in creation order, default first.
type ListCategoriesUseCase struct {
	registry adapter.CategoryRegistry
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(registry adapter.CategoryRegistry) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		registry: registry,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Rules:     cat.Rules,
			Position:  cat.Position,
			IsDefault: cat.IsDefault,
		}
	}
	return output, nil
}
