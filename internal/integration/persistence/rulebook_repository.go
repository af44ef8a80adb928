// Package persistence implements the store, registry and rulebook interfaces.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	"github.com/xpress-ledger/backend/internal/integration/persistence/model"
)

// rulebookRepository implements adapter.RulebookRepository on top of GORM.
type rulebookRepository struct {
	db *gorm.DB
}

// NewRulebookRepository creates a new rulebook repository instance.
func NewRulebookRepository(db *gorm.DB) adapter.RulebookRepository {
	return &rulebookRepository{
		db: db,
	}
}

// SaveAll snapshots the full category set, replacing the stored rulebook.
// The swap runs in one transaction so a failed save never leaves a partial
// rulebook behind.
func (r *rulebookRepository) SaveAll(ctx context.Context, categories []*entity.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CategoryRuleModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear category rules: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.CategoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}

		for _, category := range categories {
			categoryModel := model.CategoryFromEntity(category)
			if err := tx.Create(categoryModel).Error; err != nil {
				return fmt.Errorf("failed to save category %q: %w", category.Name, err)
			}
		}
		return nil
	})
}

// LoadAll reads the stored rulebook in creation order.
func (r *rulebookRepository) LoadAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}
