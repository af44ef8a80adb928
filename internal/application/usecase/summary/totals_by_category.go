// Package summary contains read-only aggregation use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// TotalsByCategoryOutput represents the per-category aggregation result.
// Categories appear in creation order, the default first; registered
// categories without transactions are included with zero totals.
type TotalsByCategoryOutput struct {
	Categories []entity.CategoryTotal
}

// TotalsByCategoryUseCase sums signed amounts and counts per category. All
// arithmetic stays in fixed-point decimal; totals reproduce exactly.
type TotalsByCategoryUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewTotalsByCategoryUseCase creates a new TotalsByCategoryUseCase instance.
func NewTotalsByCategoryUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *TotalsByCategoryUseCase {
	return &TotalsByCategoryUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the per-category aggregation.
func (uc *TotalsByCategoryUseCase) Execute(ctx context.Context) (*TotalsByCategoryOutput, error) {
	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	transactions, err := uc.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	totals := make([]entity.CategoryTotal, len(categories))
	indexByID := make(map[uuid.UUID]int, len(categories))
	for i, cat := range categories {
		totals[i] = entity.CategoryTotal{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Total:        decimal.Zero,
		}
		indexByID[cat.ID] = i
	}

	for _, tx := range transactions {
		i, ok := indexByID[tx.CategoryID]
		if !ok {
			// A dataset loaded before a registry restore could reference a
			// vanished category; surface it rather than folding it silently.
			return nil, fmt.Errorf("transaction %s references unregistered category %s", tx.ID, tx.CategoryID)
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
		totals[i].Count++
	}

	return &TotalsByCategoryOutput{Categories: totals}, nil
}
