// Package summary contains read-only aggregation use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// GetTotalsOutput represents the headline dataset figures. ExpenseTotal is
// reported positive; NetTotal is income minus expenses.
type GetTotalsOutput struct {
	Totals entity.DatasetTotals
	Count  int
}

// GetTotalsUseCase computes the income/expense/net figures over the dataset.
type GetTotalsUseCase struct {
	store adapter.TransactionStore
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(store adapter.TransactionStore) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		store: store,
	}
}

// Execute performs the headline aggregation.
func (uc *GetTotalsUseCase) Execute(ctx context.Context) (*GetTotalsOutput, error) {
	transactions, err := uc.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		if tx.IsDebit() {
			expenses = expenses.Add(tx.Amount.Neg())
		} else {
			income = income.Add(tx.Amount)
		}
	}

	return &GetTotalsOutput{
		Totals: entity.DatasetTotals{
			IncomeTotal:  income,
			ExpenseTotal: expenses,
			NetTotal:     income.Sub(expenses),
		},
		Count: len(transactions),
	}, nil
}
