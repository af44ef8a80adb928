// Package categoryrule contains rule mutation use cases.
package categoryrule

import (
	"context"
	"fmt"
	"time"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// RemoveRuleInput represents the input for removing a rule from a category.
type RemoveRuleInput struct {
	CategoryName string
	Pattern      string
	Exact        bool
}

// RemoveRuleOutput represents the output of removing a rule.
type RemoveRuleOutput struct {
	// Removed is false when the category did not own the pattern; removal is
	// idempotent like addition.
	Removed       bool
	Recategorized categorize.Counts
}

// RemoveRuleUseCase removes a matching rule from a category and
// recategorizes the dataset against the updated rule set.
type RemoveRuleUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewRemoveRuleUseCase creates a new RemoveRuleUseCase instance.
func NewRemoveRuleUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *RemoveRuleUseCase {
	return &RemoveRuleUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the rule removal.
func (uc *RemoveRuleUseCase) Execute(ctx context.Context, input RemoveRuleInput) (*RemoveRuleOutput, error) {
	pattern := entity.NormalizePattern(input.Pattern)

	category, err := findCategory(ctx, uc.registry, input.CategoryName)
	if err != nil {
		return nil, err
	}

	kept := category.Rules[:0:0]
	removed := false
	for _, rule := range category.Rules {
		if rule.Pattern == pattern && rule.Exact == input.Exact {
			removed = true
			continue
		}
		kept = append(kept, rule)
	}

	if !removed {
		return &RemoveRuleOutput{Removed: false}, nil
	}

	category.Rules = kept
	category.UpdatedAt = time.Now().UTC()

	if err := uc.registry.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to remove rule: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	counts, err := categorize.Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &RemoveRuleOutput{
		Removed:       true,
		Recategorized: counts,
	}, nil
}
