// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryName is the reserved name of the always-present category
// that uncategorized transactions fall into. It cannot be deleted or renamed.
const DefaultCategoryName = "Uncategorized"

// Rule is a textual pattern owned by a category. Patterns are matched
// case-insensitively against transaction descriptions, either as a substring
// or as an exact match. Patterns are stored normalized (trimmed, lowercased).
type Rule struct {
	Pattern string
	Exact   bool
}

// NormalizePattern lowercases and trims a raw pattern for storage and matching.
func NormalizePattern(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Category represents a user-defined transaction category and its matching
// rules. Transactions reference categories by stable ID; Name is a mutable
// display attribute, so renames never dangle.
type Category struct {
	ID        uuid.UUID
	Name      string
	Rules     []Rule
	Position  int  // Creation order; used as the matcher tie-break
	IsDefault bool // True only for the reserved category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity at the given creation position.
func NewCategory(name string, position int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Rules:     nil,
		Position:  position,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDefaultCategory creates the reserved category. It always sits at
// position 0 and owns no rules.
func NewDefaultCategory() *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      DefaultCategoryName,
		Position:  0,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasRule reports whether the category already owns the normalized pattern.
func (c *Category) HasRule(pattern string, exact bool) bool {
	for _, r := range c.Rules {
		if r.Pattern == pattern && r.Exact == exact {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the category, including its rule list.
func (c *Category) Clone() *Category {
	clone := *c
	clone.Rules = make([]Rule, len(c.Rules))
	copy(clone.Rules, c.Rules)
	return &clone
}
