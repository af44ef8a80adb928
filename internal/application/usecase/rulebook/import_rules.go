// Package rulebook contains rule definition import/export use cases.
package rulebook

import (
	"context"
	"fmt"
	"strings"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// ImportRulesInput represents the input for replaying saved rule definitions.
type ImportRulesInput struct {
	Definitions []CategoryDefinition
}

// ImportRulesOutput represents the output of replaying rule definitions.
type ImportRulesOutput struct {
	ImportedCategories int
	ImportedRules      int
	Recategorized      categorize.Counts
}

// ImportRulesUseCase replays saved definitions as addCategory/addRule calls
// against the registry. The whole batch is validated before anything is
// written; a clash rejects the import and leaves the registry untouched.
// Definitions carrying the reserved default name contribute no category;
// the default always exists.
type ImportRulesUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewImportRulesUseCase creates a new ImportRulesUseCase instance.
func NewImportRulesUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *ImportRulesUseCase {
	return &ImportRulesUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the import.
func (uc *ImportRulesUseCase) Execute(ctx context.Context, input ImportRulesInput) (*ImportRulesOutput, error) {
	// Validate the whole batch up front: fail fast, no partial mutation.
	seen := make(map[string]struct{}, len(input.Definitions))
	pending := make([]*entity.Category, 0, len(input.Definitions))
	importedRules := 0

	for _, def := range input.Definitions {
		name := strings.TrimSpace(def.Category)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameEmpty,
				"imported category name cannot be empty",
				domainerror.ErrCategoryNameEmpty,
			)
		}
		if strings.EqualFold(name, entity.DefaultCategoryName) {
			continue
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				fmt.Sprintf("imported category %q appears twice", name),
				domainerror.ErrCategoryNameExists,
			)
		}
		seen[key] = struct{}{}

		exists, err := uc.registry.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				fmt.Sprintf("category %q already exists", name),
				domainerror.ErrCategoryNameExists,
			)
		}

		category := entity.NewCategory(name, 0)
		for _, rule := range def.Rules {
			pattern := entity.NormalizePattern(rule.Pattern)
			if pattern == "" {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeRulePatternEmpty,
					fmt.Sprintf("category %q carries an empty rule pattern", name),
					domainerror.ErrRulePatternEmpty,
				)
			}
			if category.HasRule(pattern, rule.Exact) {
				continue
			}
			category.Rules = append(category.Rules, entity.Rule{Pattern: pattern, Exact: rule.Exact})
			importedRules++
		}
		pending = append(pending, category)
	}

	for _, category := range pending {
		if err := uc.registry.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to create category %q: %w", category.Name, err)
		}
	}

	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if err := uc.rulebook.SaveAll(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to persist rulebook: %w", err)
	}

	counts, err := categorize.Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &ImportRulesOutput{
		ImportedCategories: len(pending),
		ImportedRules:      importedRules,
		Recategorized:      counts,
	}, nil
}
