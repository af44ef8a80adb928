// Package summary contains read-only aggregation use cases.
package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// TotalsByPeriodInput represents the input for period aggregation.
type TotalsByPeriodInput struct {
	Granularity string
}

// TotalsByPeriodOutput represents the period aggregation result. Periods are
// ordered chronologically ascending; inside each period, category subtotals
// follow creation order and only cover categories seen in that period.
type TotalsByPeriodOutput struct {
	Granularity Granularity
	Periods     []entity.PeriodTotal
}

// TotalsByPeriodUseCase groups the dataset into day, month or year buckets
// with per-category subtotals inside each bucket.
type TotalsByPeriodUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewTotalsByPeriodUseCase creates a new TotalsByPeriodUseCase instance.
func NewTotalsByPeriodUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *TotalsByPeriodUseCase {
	return &TotalsByPeriodUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the period aggregation.
func (uc *TotalsByPeriodUseCase) Execute(ctx context.Context, input TotalsByPeriodInput) (*TotalsByPeriodOutput, error) {
	granularity, err := ParseGranularity(input.Granularity)
	if err != nil {
		return nil, err
	}

	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	transactions, err := uc.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	type bucket struct {
		period     entity.PeriodTotal
		byCategory map[uuid.UUID]*entity.CategoryTotal
	}

	namesByID := make(map[uuid.UUID]string, len(categories))
	positionByID := make(map[uuid.UUID]int, len(categories))
	for _, cat := range categories {
		namesByID[cat.ID] = cat.Name
		positionByID[cat.ID] = cat.Position
	}

	buckets := make(map[string]*bucket)
	for _, tx := range transactions {
		key := PeriodKey(tx.Date, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				period: entity.PeriodTotal{
					Key:   key,
					Start: PeriodStart(tx.Date, granularity),
					Total: decimal.Zero,
				},
				byCategory: make(map[uuid.UUID]*entity.CategoryTotal),
			}
			buckets[key] = b
		}

		b.period.Total = b.period.Total.Add(tx.Amount)
		b.period.Count++

		ct, ok := b.byCategory[tx.CategoryID]
		if !ok {
			ct = &entity.CategoryTotal{
				CategoryID:   tx.CategoryID,
				CategoryName: namesByID[tx.CategoryID],
				Total:        decimal.Zero,
			}
			b.byCategory[tx.CategoryID] = ct
		}
		ct.Total = ct.Total.Add(tx.Amount)
		ct.Count++
	}

	periods := make([]entity.PeriodTotal, 0, len(buckets))
	for _, b := range buckets {
		subtotals := make([]entity.CategoryTotal, 0, len(b.byCategory))
		for _, ct := range b.byCategory {
			subtotals = append(subtotals, *ct)
		}
		sort.Slice(subtotals, func(i, j int) bool {
			return positionByID[subtotals[i].CategoryID] < positionByID[subtotals[j].CategoryID]
		})
		b.period.ByCategory = subtotals
		periods = append(periods, b.period)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Key < periods[j].Key })

	return &TotalsByPeriodOutput{
		Granularity: granularity,
		Periods:     periods,
	}, nil
}
