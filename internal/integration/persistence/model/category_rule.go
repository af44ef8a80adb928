// Package model defines database models for the persistence layer.
package model

import (
	"github.com/google/uuid"
)

// CategoryRuleModel represents the category_rules table in the rulebook
// database. Rules are owned by their category and are deleted with it.
type CategoryRuleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Pattern    string    `gorm:"type:varchar(255);not null"`
	Exact      bool      `gorm:"not null;default:false"`
	Position   int       `gorm:"not null"`
}

// TableName returns the table name for the CategoryRuleModel.
func (CategoryRuleModel) TableName() string {
	return "category_rules"
}
