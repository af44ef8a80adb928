// Package rulebook contains rule definition import/export use cases.
package rulebook

import (
	"context"
	"fmt"

	"github.com/xpress-ledger/backend/internal/application/adapter"
)

// RuleDefinition is the portable form of a single rule.
type RuleDefinition struct {
	Pattern string
	Exact   bool
}

// CategoryDefinition is the portable form of a category and its rules.
type CategoryDefinition struct {
	Category string
	Rules    []RuleDefinition
}

// ExportRulesOutput represents the exported rule definitions in creation
// order, the default category first.
type ExportRulesOutput struct {
	Definitions []CategoryDefinition
}

// ExportRulesUseCase serializes the registry into portable definitions so
// the persistence collaborator can save them between sessions.
type ExportRulesUseCase struct {
	registry adapter.CategoryRegistry
}

// NewExportRulesUseCase creates a new ExportRulesUseCase instance.
func NewExportRulesUseCase(registry adapter.CategoryRegistry) *ExportRulesUseCase {
	return &ExportRulesUseCase{
		registry: registry,
	}
}

// Execute performs the export.
func (uc *ExportRulesUseCase) Execute(ctx context.Context) (*ExportRulesOutput, error) {
	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ExportRulesOutput{
		Definitions: make([]CategoryDefinition, len(categories)),
	}
	for i, cat := range categories {
		rules := make([]RuleDefinition, len(cat.Rules))
		for j, rule := range cat.Rules {
			rules[j] = RuleDefinition{
				Pattern: rule.Pattern,
				Exact:   rule.Exact,
			}
		}
		output.Definitions[i] = CategoryDefinition{
			Category: cat.Name,
			Rules:    rules,
		}
	}
	return output, nil
}
