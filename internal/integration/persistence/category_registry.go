// Package persistence implements the store, registry and rulebook interfaces.
package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// categoryRegistry implements adapter.CategoryRegistry in memory. The reserved
// default category is created at construction, so the registry invariant holds
// from the first call.
type categoryRegistry struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Category
	nextPos int
}

// NewCategoryRegistry creates a registry seeded with the default category.
func NewCategoryRegistry() adapter.CategoryRegistry {
	def := entity.NewDefaultCategory()
	return &categoryRegistry{
		byID:    map[uuid.UUID]*entity.Category{def.ID: def},
		nextPos: 1,
	}
}

// Create adds a new category, assigning the next creation position.
func (r *categoryRegistry) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByNameLocked(category.Name) != nil {
		return domainerror.ErrCategoryNameExists
	}

	clone := category.Clone()
	clone.Position = r.nextPos
	r.nextPos++
	r.byID[clone.ID] = clone

	// Reflect the assigned position back to the caller's entity.
	category.Position = clone.Position
	return nil
}

// FindByID retrieves a category by its stable ID.
func (r *categoryRegistry) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return cat.Clone(), nil
}

// FindByName retrieves a category by name, case-insensitively.
func (r *categoryRegistry) FindByName(_ context.Context, name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat := r.findByNameLocked(name)
	if cat == nil {
		return nil, domainerror.ErrCategoryNotFound
	}
	return cat.Clone(), nil
}

// ExistsByName checks for a case-insensitive name clash.
func (r *categoryRegistry) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findByNameLocked(name) != nil, nil
}

// List retrieves all categories in creation order, the default first.
func (r *categoryRegistry) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Category, 0, len(r.byID))
	for _, cat := range r.byID {
		out = append(out, cat.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// Default retrieves the reserved default category.
func (r *categoryRegistry) Default(_ context.Context) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.byID {
		if cat.IsDefault {
			return cat.Clone(), nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// Update writes back a modified category.
func (r *categoryRegistry) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[category.ID]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	if clash := r.findByNameLocked(category.Name); clash != nil && clash.ID != category.ID {
		return domainerror.ErrCategoryNameExists
	}

	clone := category.Clone()
	// Position and default flag are registry-owned; keep the stored values.
	clone.Position = existing.Position
	clone.IsDefault = existing.IsDefault
	clone.UpdatedAt = time.Now().UTC()
	r.byID[category.ID] = clone
	return nil
}

// Delete removes a category.
func (r *categoryRegistry) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, ok := r.byID[id]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	if cat.IsDefault {
		return domainerror.ErrCategoryReserved
	}
	delete(r.byID, id)
	return nil
}

// Restore replaces the entire registry content with a saved definition set.
func (r *categoryRegistry) Restore(_ context.Context, categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	defaults := 0
	maxPos := 0
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		key := strings.ToLower(cat.Name)
		if _, dup := seen[key]; dup {
			return domainerror.ErrCategoryNameExists
		}
		seen[key] = struct{}{}
		if cat.IsDefault {
			defaults++
		}
		if cat.Position > maxPos {
			maxPos = cat.Position
		}
		byID[cat.ID] = cat.Clone()
	}
	if defaults != 1 {
		return domainerror.ErrCategoryReserved
	}

	r.byID = byID
	r.nextPos = maxPos + 1
	return nil
}

// findByNameLocked returns the category with the given name, or nil. The
// caller must hold the lock.
func (r *categoryRegistry) findByNameLocked(name string) *entity.Category {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, cat := range r.byID {
		if strings.ToLower(cat.Name) == lowered {
			return cat
		}
	}
	return nil
}
