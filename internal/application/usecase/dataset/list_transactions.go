// Package dataset contains dataset ingestion and listing use cases.
package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
)

// ListTransactionsInput represents the filter options for listing transactions.
type ListTransactionsInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string // Category names; empty means all
	Search     string   // Case-insensitive description substring
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID           uuid.UUID
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	CategoryName string
	Override     bool
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int
}

// ListTransactionsUseCase lists the dataset in ingestion order with optional
// date-range, category and description filters.
type ListTransactionsUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	categories, err := uc.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	namesByID := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		namesByID[cat.ID] = cat.Name
	}

	wantedCategories := make(map[string]struct{}, len(input.Categories))
	for _, name := range input.Categories {
		wantedCategories[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}
	for _, tx := range transactions {
		if input.StartDate != nil && tx.Date.Before(*input.StartDate) {
			continue
		}
		if input.EndDate != nil && tx.Date.After(*input.EndDate) {
			continue
		}
		categoryName := namesByID[tx.CategoryID]
		if len(wantedCategories) > 0 {
			if _, ok := wantedCategories[strings.ToLower(categoryName)]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}

		output.Transactions = append(output.Transactions, &TransactionOutput{
			ID:           tx.ID,
			Date:         tx.Date,
			Description:  tx.Description,
			Amount:       tx.Amount,
			CategoryID:   tx.CategoryID,
			CategoryName: categoryName,
			Override:     tx.Override,
		})
	}
	output.Total = len(output.Transactions)

	return output, nil
}
