package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

func TestCategoryRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("starts with the default category", func(t *testing.T) {
		registry := NewCategoryRegistry()

		def, err := registry.Default(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if def.Name != entity.DefaultCategoryName || !def.IsDefault {
			t.Errorf("unexpected default category: %+v", def)
		}
		if def.Position != 0 {
			t.Errorf("expected the default at position 0, got %d", def.Position)
		}
	})

	t.Run("assigns creation positions in order", func(t *testing.T) {
		registry := NewCategoryRegistry()

		first := entity.NewCategory("First", 0)
		second := entity.NewCategory("Second", 0)
		if err := registry.Create(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := registry.Create(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.Position != 1 || second.Position != 2 {
			t.Errorf("expected positions 1 and 2, got %d and %d", first.Position, second.Position)
		}

		list, _ := registry.List(ctx)
		if len(list) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(list))
		}
		if list[0].Name != entity.DefaultCategoryName || list[1].Name != "First" || list[2].Name != "Second" {
			t.Error("list must be in creation order with the default first")
		}
	})

	t.Run("finds by name case-insensitively", func(t *testing.T) {
		registry := NewCategoryRegistry()
		if err := registry.Create(ctx, entity.NewCategory("Groceries", 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := registry.FindByName(ctx, "  gRoCeRiEs ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Groceries" {
			t.Errorf("expected the stored name, got %q", found.Name)
		}
	})

	t.Run("rejects duplicate names on create", func(t *testing.T) {
		registry := NewCategoryRegistry()
		if err := registry.Create(ctx, entity.NewCategory("Groceries", 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := registry.Create(ctx, entity.NewCategory("GROCERIES", 0))
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected name-exists error, got %v", err)
		}
	})

	t.Run("hands out clones", func(t *testing.T) {
		registry := NewCategoryRegistry()
		cat := entity.NewCategory("Groceries", 0)
		cat.Rules = []entity.Rule{{Pattern: "market"}}
		if err := registry.Create(ctx, cat); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, _ := registry.FindByName(ctx, "Groceries")
		first.Name = "Tampered"
		first.Rules[0].Pattern = "tampered"

		second, _ := registry.FindByName(ctx, "Groceries")
		if second.Name != "Groceries" || second.Rules[0].Pattern != "market" {
			t.Error("mutating a returned category must not affect the registry")
		}
	})

	t.Run("update keeps registry-owned fields", func(t *testing.T) {
		registry := NewCategoryRegistry()
		cat := entity.NewCategory("Groceries", 0)
		if err := registry.Create(ctx, cat); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tampered := cat.Clone()
		tampered.Position = 99
		tampered.IsDefault = true
		tampered.Name = "Food"
		if err := registry.Update(ctx, tampered); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := registry.FindByID(ctx, cat.ID)
		if stored.Name != "Food" {
			t.Errorf("expected the rename to stick, got %q", stored.Name)
		}
		if stored.Position != cat.Position || stored.IsDefault {
			t.Error("position and default flag must stay registry-owned")
		}
	})

	t.Run("delete rejects the default", func(t *testing.T) {
		registry := NewCategoryRegistry()
		def, _ := registry.Default(ctx)

		err := registry.Delete(ctx, def.ID)
		if !errors.Is(err, domainerror.ErrCategoryReserved) {
			t.Errorf("expected reserved error, got %v", err)
		}
	})

	t.Run("restore replaces the content", func(t *testing.T) {
		registry := NewCategoryRegistry()
		if err := registry.Create(ctx, entity.NewCategory("Old", 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		def := entity.NewDefaultCategory()
		saved := entity.NewCategory("Saved", 1)
		if err := registry.Restore(ctx, []*entity.Category{def, saved}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := registry.FindByName(ctx, "Old"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Error("restore must drop previous content")
		}
		if _, err := registry.FindByName(ctx, "Saved"); err != nil {
			t.Errorf("restored category missing: %v", err)
		}

		// Creation positions continue after the restored maximum.
		next := entity.NewCategory("Next", 0)
		if err := registry.Create(ctx, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Position != 2 {
			t.Errorf("expected position 2 after restore, got %d", next.Position)
		}
	})

	t.Run("restore requires exactly one default", func(t *testing.T) {
		registry := NewCategoryRegistry()

		err := registry.Restore(ctx, []*entity.Category{entity.NewCategory("NoDefault", 0)})
		if !errors.Is(err, domainerror.ErrCategoryReserved) {
			t.Errorf("expected reserved error, got %v", err)
		}

		err = registry.Restore(ctx, []*entity.Category{entity.NewDefaultCategory(), entity.NewDefaultCategory()})
		if err == nil {
			t.Error("expected two defaults to be rejected")
		}
	})
}
