// Package categoryrule contains rule mutation use cases.
package categoryrule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// MaxPatternLength is the maximum allowed length for rule patterns.
const MaxPatternLength = 255

// AddRuleInput represents the input for adding a rule to a category.
type AddRuleInput struct {
	CategoryName string
	Pattern      string
	Exact        bool
}

// AddRuleOutput represents the output of adding a rule.
type AddRuleOutput struct {
	// Added is false when the category already owned the pattern; adding an
	// existing pattern is a no-op, not an error.
	Added         bool
	Recategorized categorize.Counts
}

// AddRuleUseCase appends a matching rule to a category and recategorizes the
// dataset against the updated rule set.
type AddRuleUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewAddRuleUseCase creates a new AddRuleUseCase instance.
func NewAddRuleUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *AddRuleUseCase {
	return &AddRuleUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the rule addition.
func (uc *AddRuleUseCase) Execute(ctx context.Context, input AddRuleInput) (*AddRuleOutput, error) {
	pattern, err := validatePattern(input.Pattern)
	if err != nil {
		return nil, err
	}

	category, err := findCategory(ctx, uc.registry, input.CategoryName)
	if err != nil {
		return nil, err
	}

	if category.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryReserved,
			"the default category cannot own rules",
			domainerror.ErrCategoryReserved,
		)
	}

	if category.HasRule(pattern, input.Exact) {
		return &AddRuleOutput{Added: false}, nil
	}

	category.Rules = append(category.Rules, entity.Rule{Pattern: pattern, Exact: input.Exact})
	category.UpdatedAt = time.Now().UTC()

	if err := uc.registry.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to add rule: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	counts, err := categorize.Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &AddRuleOutput{
		Added:         true,
		Recategorized: counts,
	}, nil
}

// validatePattern normalizes a raw pattern and rejects empty or oversized ones.
func validatePattern(raw string) (string, error) {
	pattern := entity.NormalizePattern(raw)
	if pattern == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeRulePatternEmpty,
			"rule pattern cannot be empty",
			domainerror.ErrRulePatternEmpty,
		)
	}
	if len(pattern) > MaxPatternLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeRulePatternEmpty,
			fmt.Sprintf("rule pattern must not exceed %d characters", MaxPatternLength),
			domainerror.ErrRulePatternEmpty,
		)
	}
	return pattern, nil
}

// findCategory resolves a category by name, mapping the miss to a coded error.
func findCategory(ctx context.Context, registry adapter.CategoryRegistry, name string) (*entity.Category, error) {
	category, err := registry.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %q not found", name),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// persistRulebook snapshots the registry into the rulebook store.
func persistRulebook(ctx context.Context, registry adapter.CategoryRegistry, rulebook adapter.RulebookRepository) error {
	categories, err := registry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if err := rulebook.SaveAll(ctx, categories); err != nil {
		return fmt.Errorf("failed to persist rulebook: %w", err)
	}
	return nil
}
