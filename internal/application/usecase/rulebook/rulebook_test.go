package rulebook

import (
	"context"
	"errors"
	"testing"

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

func newRegistry(t *testing.T, names map[string][]entity.Rule, order []string) adapter.CategoryRegistry {
	t.Helper()
	registry := persistence.NewCategoryRegistry()
	for _, name := range order {
		cat := entity.NewCategory(name, 0)
		cat.Rules = names[name]
		if err := registry.Create(context.Background(), cat); err != nil {
			t.Fatalf("failed to register category %q: %v", name, err)
		}
	}
	return registry
}

func TestExportRulesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("exports every category in creation order with the default first", func(t *testing.T) {
		registry := newRegistry(t, map[string][]entity.Rule{
			"Groceries": {{Pattern: "market"}, {Pattern: "weekly shop", Exact: true}},
			"Transport": {{Pattern: "uber"}},
		}, []string{"Groceries", "Transport"})

		uc := NewExportRulesUseCase(registry)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Definitions) != 3 {
			t.Fatalf("expected 3 definitions, got %d", len(output.Definitions))
		}
		if output.Definitions[0].Category != entity.DefaultCategoryName {
			t.Errorf("expected the default first, got %q", output.Definitions[0].Category)
		}
		if len(output.Definitions[0].Rules) != 0 {
			t.Error("the default definition must carry no rules")
		}

		groceries := output.Definitions[1]
		if groceries.Category != "Groceries" || len(groceries.Rules) != 2 {
			t.Fatalf("unexpected groceries definition: %+v", groceries)
		}
		if !groceries.Rules[1].Exact || groceries.Rules[1].Pattern != "weekly shop" {
			t.Error("exactness must survive the export")
		}
	})
}

func TestImportRulesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("replays definitions and persists the rulebook", func(t *testing.T) {
		store := persistence.NewTransactionStore()
		registry := newRegistry(t, nil, nil)
		saved := &memoryRulebook{}

		uc := NewImportRulesUseCase(store, registry, saved)
		output, err := uc.Execute(ctx, ImportRulesInput{Definitions: []CategoryDefinition{
			{Category: entity.DefaultCategoryName},
			{Category: "Groceries", Rules: []RuleDefinition{
				{Pattern: "  MARKET  "},
				{Pattern: "weekly shop", Exact: true},
			}},
			{Category: "Transport", Rules: []RuleDefinition{{Pattern: "uber"}}},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ImportedCategories != 2 {
			t.Errorf("expected 2 imported categories, got %d", output.ImportedCategories)
		}
		if output.ImportedRules != 3 {
			t.Errorf("expected 3 imported rules, got %d", output.ImportedRules)
		}

		groceries, err := registry.FindByName(ctx, "Groceries")
		if err != nil {
			t.Fatalf("failed to find imported category: %v", err)
		}
		if !groceries.HasRule("market", false) {
			t.Error("imported patterns must be normalized")
		}
		if len(saved.saved) == 0 {
			t.Error("import must persist the rulebook")
		}
	})

	t.Run("a default-named definition never creates a second default", func(t *testing.T) {
		store := persistence.NewTransactionStore()
		registry := newRegistry(t, nil, nil)

		uc := NewImportRulesUseCase(store, registry, &memoryRulebook{})
		if _, err := uc.Execute(ctx, ImportRulesInput{Definitions: []CategoryDefinition{
			{Category: "uncategorized"},
		}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		categories, _ := registry.List(ctx)
		if len(categories) != 1 {
			t.Errorf("expected the registry to keep a single category, got %d", len(categories))
		}
	})

	t.Run("a clash leaves the registry untouched", func(t *testing.T) {
		store := persistence.NewTransactionStore()
		registry := newRegistry(t, nil, []string{"Groceries"})

		uc := NewImportRulesUseCase(store, registry, &memoryRulebook{})
		_, err := uc.Execute(ctx, ImportRulesInput{Definitions: []CategoryDefinition{
			{Category: "Fresh"},
			{Category: "groceries"},
		}})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Fatalf("expected name-exists error, got %v", err)
		}

		if _, err := registry.FindByName(ctx, "Fresh"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Error("a failed import must not create any category")
		}
	})

	t.Run("rejects duplicate names inside the batch", func(t *testing.T) {
		store := persistence.NewTransactionStore()
		registry := newRegistry(t, nil, nil)

		uc := NewImportRulesUseCase(store, registry, &memoryRulebook{})
		_, err := uc.Execute(ctx, ImportRulesInput{Definitions: []CategoryDefinition{
			{Category: "Groceries"},
			{Category: "GROCERIES"},
		}})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected name-exists error, got %v", err)
		}
	})

	t.Run("rejects empty rule patterns", func(t *testing.T) {
		store := persistence.NewTransactionStore()
		registry := newRegistry(t, nil, nil)

		uc := NewImportRulesUseCase(store, registry, &memoryRulebook{})
		_, err := uc.Execute(ctx, ImportRulesInput{Definitions: []CategoryDefinition{
			{Category: "Groceries", Rules: []RuleDefinition{{Pattern: "   "}}},
		}})
		if !errors.Is(err, domainerror.ErrRulePatternEmpty) {
			t.Errorf("expected pattern-empty error, got %v", err)
		}
	})

	t.Run("round-trips through export", func(t *testing.T) {
		source := newRegistry(t, map[string][]entity.Rule{
			"Groceries": {{Pattern: "market"}},
			"Transport": {{Pattern: "uber"}, {Pattern: "monthly pass", Exact: true}},
		}, []string{"Groceries", "Transport"})

		exported, err := NewExportRulesUseCase(source).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		store := persistence.NewTransactionStore()
		fresh := newRegistry(t, nil, nil)
		uc := NewImportRulesUseCase(store, fresh, &memoryRulebook{})
		if _, err := uc.Execute(ctx, ImportRulesInput{Definitions: exported.Definitions}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reExported, err := NewExportRulesUseCase(fresh).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reExported.Definitions) != len(exported.Definitions) {
			t.Fatalf("expected %d definitions, got %d", len(exported.Definitions), len(reExported.Definitions))
		}
		for i, def := range exported.Definitions {
			got := reExported.Definitions[i]
			if got.Category != def.Category || len(got.Rules) != len(def.Rules) {
				t.Errorf("definition %d differs after round-trip: %+v vs %+v", i, def, got)
			}
		}
	})
}
