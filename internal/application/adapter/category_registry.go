// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// CategoryRegistry defines the interface for category storage. The registry
// is the single owner of categories; every accessor hands out clones, so the
// only way to change a category is through Update.
type CategoryRegistry interface {
	// Create adds a new category. The registry assigns the creation position.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its stable ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by name, case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// ExistsByName checks for a case-insensitive name clash.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List retrieves all categories in creation order, the default first.
	List(ctx context.Context) ([]*entity.Category, error)

	// Default retrieves the reserved default category.
	Default(ctx context.Context) (*entity.Category, error)

	// Update writes back a modified category (rename or rule list change).
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Deleting the default is rejected.
	Delete(ctx context.Context, id uuid.UUID) error

	// Restore replaces the entire registry content with a saved definition
	// set. The set must contain exactly one default category.
	Restore(ctx context.Context, categories []*entity.Category) error
}
