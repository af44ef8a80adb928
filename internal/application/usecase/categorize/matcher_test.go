package categorize

import (
	"testing"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

func makeCategory(name string, position int, rules ...entity.Rule) *entity.Category {
	cat := entity.NewCategory(name, position)
	cat.Rules = rules
	return cat
}

func TestMatchCategory(t *testing.T) {
	defaultCat := entity.NewDefaultCategory()

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		groceries := makeCategory("Groceries", 1, entity.Rule{Pattern: "market"})
		categories := []*entity.Category{defaultCat, groceries}

		id, ok := MatchCategory("SUPERMARKET PURCHASE 123", categories)
		if !ok {
			t.Fatal("expected a match")
		}
		if id != groceries.ID {
			t.Errorf("expected groceries category, got %s", id)
		}
	})

	t.Run("returns no match when no rule applies", func(t *testing.T) {
		groceries := makeCategory("Groceries", 1, entity.Rule{Pattern: "market"})
		categories := []*entity.Category{defaultCat, groceries}

		if _, ok := MatchCategory("GAS STATION", categories); ok {
			t.Error("expected no match")
		}
	})

	t.Run("longest pattern wins across categories", func(t *testing.T) {
		food := makeCategory("Food", 1, entity.Rule{Pattern: "coffee"})
		coffeeShops := makeCategory("Coffee Shops", 2, entity.Rule{Pattern: "coffee shop"})
		categories := []*entity.Category{defaultCat, food, coffeeShops}

		id, ok := MatchCategory("Coffee Shop Downtown", categories)
		if !ok {
			t.Fatal("expected a match")
		}
		if id != coffeeShops.ID {
			t.Errorf("expected the longer pattern's category, got %s", id)
		}
	})

	t.Run("creation order breaks equal-length ties", func(t *testing.T) {
		first := makeCategory("First", 1, entity.Rule{Pattern: "shop"})
		second := makeCategory("Second", 2, entity.Rule{Pattern: "stop"})
		categories := []*entity.Category{defaultCat, first, second}

		id, ok := MatchCategory("shop and stop", categories)
		if !ok {
			t.Fatal("expected a match")
		}
		if id != first.ID {
			t.Errorf("expected earlier-created category to win, got %s", id)
		}
	})

	t.Run("result does not depend on slice order", func(t *testing.T) {
		first := makeCategory("First", 1, entity.Rule{Pattern: "shop"})
		second := makeCategory("Second", 2, entity.Rule{Pattern: "stop"})

		forward := []*entity.Category{defaultCat, first, second}
		reversed := []*entity.Category{second, first, defaultCat}

		forwardID, _ := MatchCategory("shop and stop", forward)
		reversedID, _ := MatchCategory("shop and stop", reversed)
		if forwardID != reversedID {
			t.Errorf("match depends on iteration order: %s vs %s", forwardID, reversedID)
		}
	})

	t.Run("exact rule requires full normalized equality", func(t *testing.T) {
		rent := makeCategory("Rent", 1, entity.Rule{Pattern: "monthly rent", Exact: true})
		categories := []*entity.Category{defaultCat, rent}

		if _, ok := MatchCategory("monthly rent payment", categories); ok {
			t.Error("exact rule must not match a longer description")
		}

		id, ok := MatchCategory("  Monthly RENT  ", categories)
		if !ok {
			t.Fatal("expected exact match after normalization")
		}
		if id != rent.ID {
			t.Errorf("expected rent category, got %s", id)
		}
	})

	t.Run("default category rules never match", func(t *testing.T) {
		polluted := entity.NewDefaultCategory()
		polluted.Rules = []entity.Rule{{Pattern: "anything"}}
		categories := []*entity.Category{polluted}

		if _, ok := MatchCategory("anything goes", categories); ok {
			t.Error("default category rules must be inert")
		}
	})

	t.Run("empty description never matches", func(t *testing.T) {
		groceries := makeCategory("Groceries", 1, entity.Rule{Pattern: "market"})
		categories := []*entity.Category{defaultCat, groceries}

		if _, ok := MatchCategory("", categories); ok {
			t.Error("expected no match for empty description")
		}
	})
}
