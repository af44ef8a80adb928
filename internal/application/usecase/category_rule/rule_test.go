package categoryrule

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
	"github.com/xpress-ledger/backend/internal/integration/persistence"
)

// memoryRulebook records saved snapshots without a database.
type memoryRulebook struct {
	saved [][]*entity.Category
}

func (m *memoryRulebook) SaveAll(_ context.Context, categories []*entity.Category) error {
	m.saved = append(m.saved, categories)
	return nil
}

func (m *memoryRulebook) LoadAll(_ context.Context) ([]*entity.Category, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func setup(t *testing.T, descriptions ...string) (adapter.TransactionStore, adapter.CategoryRegistry, *memoryRulebook) {
	t.Helper()
	ctx := context.Background()
	store := persistence.NewTransactionStore()
	registry := persistence.NewCategoryRegistry()
	rulebook := &memoryRulebook{}

	cat := entity.NewCategory("Groceries", 0)
	if err := registry.Create(ctx, cat); err != nil {
		t.Fatalf("failed to register category: %v", err)
	}

	defaultCat, err := registry.Default(ctx)
	if err != nil {
		t.Fatalf("failed to resolve default category: %v", err)
	}
	transactions := make([]*entity.Transaction, len(descriptions))
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, desc := range descriptions {
		transactions[i] = entity.NewTransaction(date, desc, decimal.NewFromInt(-5), defaultCat.ID, i)
	}
	if _, err := store.Replace(ctx, transactions); err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}

	return store, registry, rulebook
}

func TestAddRuleUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a normalized rule and recategorizes", func(t *testing.T) {
		store, registry, rulebook := setup(t, "SUPERMARKET ONE", "GAS STATION")
		uc := NewAddRuleUseCase(store, registry, rulebook)

		output, err := uc.Execute(ctx, AddRuleInput{
			CategoryName: "Groceries",
			Pattern:      "  MARKET  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Added {
			t.Error("expected the rule to be added")
		}
		if output.Recategorized.Changed != 1 {
			t.Errorf("expected 1 changed transaction, got %d", output.Recategorized.Changed)
		}

		cat, _ := registry.FindByName(ctx, "Groceries")
		if !cat.HasRule("market", false) {
			t.Error("expected the stored pattern to be trimmed and lowercased")
		}
		if len(rulebook.saved) == 0 {
			t.Error("rule addition must persist the rulebook")
		}
	})

	t.Run("adding an existing pattern is a no-op", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewAddRuleUseCase(store, registry, rulebook)

		if _, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "market"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snapshots := len(rulebook.saved)

		output, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "MARKET"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Added {
			t.Error("duplicate pattern must not be added twice")
		}
		if len(rulebook.saved) != snapshots {
			t.Error("a no-op addition must not persist the rulebook")
		}

		cat, _ := registry.FindByName(ctx, "Groceries")
		if len(cat.Rules) != 1 {
			t.Errorf("expected 1 rule, got %d", len(cat.Rules))
		}
	})

	t.Run("same pattern with different exactness is a distinct rule", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewAddRuleUseCase(store, registry, rulebook)

		if _, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "market"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "market", Exact: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Added {
			t.Error("exact variant of a substring pattern should be added")
		}
	})

	t.Run("rejects rules on the default category", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewAddRuleUseCase(store, registry, rulebook)

		_, err := uc.Execute(ctx, AddRuleInput{
			CategoryName: entity.DefaultCategoryName,
			Pattern:      "anything",
		})
		if !errors.Is(err, domainerror.ErrCategoryReserved) {
			t.Errorf("expected reserved error, got %v", err)
		}
	})

	t.Run("rejects empty and oversized patterns", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewAddRuleUseCase(store, registry, rulebook)

		if _, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "   "}); !errors.Is(err, domainerror.ErrRulePatternEmpty) {
			t.Errorf("expected pattern-empty error, got %v", err)
		}
		long := strings.Repeat("x", MaxPatternLength+1)
		if _, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: long}); !errors.Is(err, domainerror.ErrRulePatternEmpty) {
			t.Errorf("expected validation error for long pattern, got %v", err)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewAddRuleUseCase(store, registry, rulebook)

		_, err := uc.Execute(ctx, AddRuleInput{CategoryName: "Nope", Pattern: "market"})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}

func TestRemoveRuleUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the rule and returns matching transactions to the default", func(t *testing.T) {
		store, registry, rulebook := setup(t, "SUPERMARKET ONE")
		addUC := NewAddRuleUseCase(store, registry, rulebook)
		if _, err := addUC.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "market"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewRemoveRuleUseCase(store, registry, rulebook)
		output, err := uc.Execute(ctx, RemoveRuleInput{CategoryName: "Groceries", Pattern: "MARKET"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Removed {
			t.Error("expected the rule to be removed")
		}
		if output.Recategorized.Changed != 1 {
			t.Errorf("expected 1 changed transaction, got %d", output.Recategorized.Changed)
		}

		defaultCat, _ := registry.Default(ctx)
		all, _ := store.All(ctx)
		if all[0].CategoryID != defaultCat.ID {
			t.Error("the transaction should fall back to the default category")
		}
	})

	t.Run("removing an absent pattern is a no-op", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		uc := NewRemoveRuleUseCase(store, registry, rulebook)

		output, err := uc.Execute(ctx, RemoveRuleInput{CategoryName: "Groceries", Pattern: "market"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Removed {
			t.Error("removing an absent pattern must report Removed=false")
		}
		if len(rulebook.saved) != 0 {
			t.Error("a no-op removal must not persist the rulebook")
		}
	})

	t.Run("exactness must match for removal", func(t *testing.T) {
		store, registry, rulebook := setup(t)
		addUC := NewAddRuleUseCase(store, registry, rulebook)
		if _, err := addUC.Execute(ctx, AddRuleInput{CategoryName: "Groceries", Pattern: "market", Exact: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewRemoveRuleUseCase(store, registry, rulebook)
		output, err := uc.Execute(ctx, RemoveRuleInput{CategoryName: "Groceries", Pattern: "market"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Removed {
			t.Error("substring removal must not remove an exact rule")
		}

		cat, _ := registry.FindByName(ctx, "Groceries")
		if !cat.HasRule("market", true) {
			t.Error("the exact rule should still be present")
		}
	})
}
