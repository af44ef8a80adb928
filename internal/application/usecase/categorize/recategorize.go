// Package categorize contains rule-matching and categorization use cases.
package categorize

import (
	"context"
	"fmt"

	"github.com/xpress-ledger/backend/internal/application/adapter"
)

// Counts reports the outcome of a categorization pass over the dataset.
type Counts struct {
	Changed   int // Transactions whose category changed
	Unchanged int // Transactions already carrying the matched category
	Skipped   int // Transactions protected by a manual override
}

// Recategorize recomputes the category of every non-overridden transaction
// from the current rule set. Registry mutations that change rule content call
// this before returning, so no aggregation read ever sees the store out of
// step with the rules. The pass is idempotent: running it twice without an
// intervening registry change leaves the store identical.
func Recategorize(ctx context.Context, store adapter.TransactionStore, registry adapter.CategoryRegistry) (Counts, error) {
	var counts Counts

	categories, err := registry.List(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to list categories: %w", err)
	}
	defaultCategory, err := registry.Default(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to resolve default category: %w", err)
	}
	transactions, err := store.All(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to read transactions: %w", err)
	}

	for _, tx := range transactions {
		if tx.Override {
			counts.Skipped++
			continue
		}

		target := defaultCategory.ID
		if matched, ok := MatchCategory(tx.Description, categories); ok {
			target = matched
		}

		if target == tx.CategoryID {
			counts.Unchanged++
			continue
		}

		if err := store.SetCategory(ctx, tx.ID, target, false); err != nil {
			return counts, fmt.Errorf("failed to set category for transaction %s: %w", tx.ID, err)
		}
		counts.Changed++
	}

	return counts, nil
}
