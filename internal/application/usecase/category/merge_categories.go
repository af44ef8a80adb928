// Package category contains category-related use cases.
package category

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

// MergeCategoriesInput represents the input for merging two categories.
type MergeCategoriesInput struct {
	SourceName string
	TargetName string
}

// MergeCategoriesOutput represents the output of merging two categories.
type MergeCategoriesOutput struct {
	MovedRules        int
	MovedTransactions int
	Recategorized     categorize.Counts
}

// MergeCategoriesUseCase reassigns all rules and all transactions from the
// source category to the target, then deletes the source. Because rule
// content changes, the whole dataset is recategorized before returning.
type MergeCategoriesUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
	rulebook adapter.RulebookRepository
}

// NewMergeCategoriesUseCase creates a new MergeCategoriesUseCase instance.
func NewMergeCategoriesUseCase(
	store adapter.TransactionStore,
	registry adapter.CategoryRegistry,
	rulebook adapter.RulebookRepository,
) *MergeCategoriesUseCase {
	return &MergeCategoriesUseCase{
		store:    store,
		registry: registry,
		rulebook: rulebook,
	}
}

// Execute performs the category merge.
func (uc *MergeCategoriesUseCase) Execute(ctx context.Context, input MergeCategoriesInput) (*MergeCategoriesOutput, error) {
	source, err := uc.findCategory(ctx, input.SourceName)
	if err != nil {
		return nil, err
	}
	target, err := uc.findCategory(ctx, input.TargetName)
	if err != nil {
		return nil, err
	}

	if source.ID == target.ID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSameCategory,
			"cannot merge a category into itself",
			domainerror.ErrSameCategory,
		)
	}

	if source.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryReserved,
			"the default category cannot be merged away",
			domainerror.ErrCategoryReserved,
		)
	}

	// The default never owns rules; merging into it drops the source's rules.
	movedRules := 0
	if !target.IsDefault {
		for _, rule := range source.Rules {
			if target.HasRule(rule.Pattern, rule.Exact) {
				continue
			}
			target.Rules = append(target.Rules, rule)
			movedRules++
		}
		target.UpdatedAt = time.Now().UTC()

		if err := uc.registry.Update(ctx, target); err != nil {
			return nil, fmt.Errorf("failed to move rules: %w", err)
		}
	}

	// Manual overrides pinned to the source stay pinned to the target.
	movedTransactions, err := uc.store.ReassignCategory(ctx, source.ID, target.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to move transactions: %w", err)
	}

	if err := uc.registry.Delete(ctx, source.ID); err != nil {
		return nil, fmt.Errorf("failed to delete source category: %w", err)
	}

	if err := persistRulebook(ctx, uc.registry, uc.rulebook); err != nil {
		return nil, err
	}

	counts, err := categorize.Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &MergeCategoriesOutput{
		MovedRules:        movedRules,
		MovedTransactions: movedTransactions,
		Recategorized:     counts,
	}, nil
}

func (uc *MergeCategoriesUseCase) findCategory(ctx context.Context, name string) (*entity.Category, error) {
	category, err := uc.registry.FindByName(ctx, name)
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
