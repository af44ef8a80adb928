// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/xpress-ledger/backend/internal/application/usecase/rulebook"
)

// RuleDefinitionPayload is the portable JSON form of a single rule.
type RuleDefinitionPayload struct {
	Pattern string `json:"pattern" binding:"required"`
	Exact   bool   `json:"exact"`
}

// CategoryDefinitionPayload is the portable JSON form of a category and
// its rules.
type CategoryDefinitionPayload struct {
	Category string                  `json:"category" binding:"required"`
	Rules    []RuleDefinitionPayload `json:"rules"`
}

// ExportRulesResponse represents the exported rule definitions.
type ExportRulesResponse struct {
	Definitions []CategoryDefinitionPayload `json:"definitions"`
}

// ImportRulesRequest represents the request body for replaying definitions.
type ImportRulesRequest struct {
	Definitions []CategoryDefinitionPayload `json:"definitions" binding:"required"`
}

// ImportRulesResponse represents the response for replaying definitions.
type ImportRulesResponse struct {
	ImportedCategories int                   `json:"imported_categories"`
	ImportedRules      int                   `json:"imported_rules"`
	Recategorized      RecategorizedResponse `json:"recategorized"`
}

// ToExportRulesResponse converts the export output to the response form.
func ToExportRulesResponse(output *rulebook.ExportRulesOutput) ExportRulesResponse {
	definitions := make([]CategoryDefinitionPayload, len(output.Definitions))
	for i, def := range output.Definitions {
		rules := make([]RuleDefinitionPayload, len(def.Rules))
		for j, rule := range def.Rules {
			rules[j] = RuleDefinitionPayload{
				Pattern: rule.Pattern,
				Exact:   rule.Exact,
			}
		}
		definitions[i] = CategoryDefinitionPayload{
			Category: def.Category,
			Rules:    rules,
		}
	}
	return ExportRulesResponse{Definitions: definitions}
}

// ToImportRulesInput converts the request body to the use case input.
func ToImportRulesInput(request ImportRulesRequest) rulebook.ImportRulesInput {
	definitions := make([]rulebook.CategoryDefinition, len(request.Definitions))
	for i, def := range request.Definitions {
		rules := make([]rulebook.RuleDefinition, len(def.Rules))
		for j, rule := range def.Rules {
			rules[j] = rulebook.RuleDefinition{
				Pattern: rule.Pattern,
				Exact:   rule.Exact,
			}
		}
		definitions[i] = rulebook.CategoryDefinition{
			Category: def.Category,
			Rules:    rules,
		}
	}
	return rulebook.ImportRulesInput{Definitions: definitions}
}
