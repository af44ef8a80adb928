// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/xpress-ledger/backend/internal/application/usecase/category"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameCategoryRequest represents the request body for category renaming.
type RenameCategoryRequest struct {
	NewName string `json:"new_name" binding:"required,min=1,max=100"`
}

// MergeCategoriesRequest represents the request body for merging categories.
type MergeCategoriesRequest struct {
	Source string `json:"source" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// RuleResponse represents a single rule in API responses.
type RuleResponse struct {
	Pattern string `json:"pattern"`
	Exact   bool   `json:"exact"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Rules     []RuleResponse `json:"rules"`
	Position  int            `json:"position"`
	IsDefault bool           `json:"is_default"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse represents the response for category deletion.
type DeleteCategoryResponse struct {
	AffectedTransactions int `json:"affected_transactions"`
}

// MergeCategoriesResponse represents the response for merging categories.
type MergeCategoriesResponse struct {
	MovedRules        int                   `json:"moved_rules"`
	MovedTransactions int                   `json:"moved_transactions"`
	Recategorized     RecategorizedResponse `json:"recategorized"`
}

// ToCategoryResponse converts a category listing item to the response form.
func ToCategoryResponse(cat *category.CategoryOutput) CategoryResponse {
	rules := make([]RuleResponse, len(cat.Rules))
	for i, rule := range cat.Rules {
		rules[i] = RuleResponse{
			Pattern: rule.Pattern,
			Exact:   rule.Exact,
		}
	}
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Rules:     rules,
		Position:  cat.Position,
		IsDefault: cat.IsDefault,
	}
}

// ToCategoryEntityResponse converts a category entity to the response form.
func ToCategoryEntityResponse(cat *entity.Category) CategoryResponse {
	rules := make([]RuleResponse, len(cat.Rules))
	for i, rule := range cat.Rules {
		rules[i] = RuleResponse{
			Pattern: rule.Pattern,
			Exact:   rule.Exact,
		}
	}
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Rules:     rules,
		Position:  cat.Position,
		IsDefault: cat.IsDefault,
	}
}

// ToCategoryListResponse converts a listing output to the response form.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: categories}
}
