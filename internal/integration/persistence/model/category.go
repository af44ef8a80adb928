// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the rulebook database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Position  int       `gorm:"not null;index"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Rules []CategoryRuleModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	rules := make([]entity.Rule, len(m.Rules))
	for i, rm := range m.Rules {
		rules[i] = entity.Rule{
			Pattern: rm.Pattern,
			Exact:   rm.Exact,
		}
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Rules:     rules,
		Position:  m.Position,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	rules := make([]CategoryRuleModel, len(category.Rules))
	for i, rule := range category.Rules {
		rules[i] = CategoryRuleModel{
			ID:         uuid.New(),
			CategoryID: category.ID,
			Pattern:    rule.Pattern,
			Exact:      rule.Exact,
			Position:   i,
		}
	}

	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Position:  category.Position,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
		Rules:     rules,
	}
}
