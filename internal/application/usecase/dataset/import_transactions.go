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
	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
)

// dateLayout is the normalized ISO-8601 date the ingestion collaborator
// delivers.
const dateLayout = "2006-01-02"

// Row is one normalized ingestion row. Amount is a signed decimal string with
// at most two fractional digits; negative means debit.
type Row struct {
	Date        string
	Description string
	Amount      string
}

// ImportTransactionsInput represents the input for dataset ingestion.
type ImportTransactionsInput struct {
	Rows []Row
}

// ImportTransactionsOutput represents the output of dataset ingestion.
type ImportTransactionsOutput struct {
	Loaded        int
	Recategorized categorize.Counts
}

// ImportTransactionsUseCase replaces the working dataset with a new batch of
// normalized rows. Every row is validated before anything is written, so a
// bad row leaves the previous dataset untouched. Loaded transactions are
// immediately categorized against the current rule set.
type ImportTransactionsUseCase struct {
	store    adapter.TransactionStore
	registry adapter.CategoryRegistry
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(store adapter.TransactionStore, registry adapter.CategoryRegistry) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		store:    store,
		registry: registry,
	}
}

// Execute performs the dataset ingestion.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	defaultCategory, err := uc.registry.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default category: %w", err)
	}

	transactions := make([]*entity.Transaction, len(input.Rows))
	for i, row := range input.Rows {
		tx, err := parseRow(row, i, defaultCategory.ID)
		if err != nil {
			return nil, err
		}
		transactions[i] = tx
	}

	loaded, err := uc.store.Replace(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	counts, err := categorize.Recategorize(ctx, uc.store, uc.registry)
	if err != nil {
		return nil, err
	}

	return &ImportTransactionsOutput{
		Loaded:        loaded,
		Recategorized: counts,
	}, nil
}

// parseRow validates one ingestion row and builds the transaction entity.
func parseRow(row Row, index int, defaultCategoryID uuid.UUID) (*entity.Transaction, error) {
	description := strings.TrimSpace(row.Description)
	if description == "" {
		return nil, invalidRow(index, "description is required")
	}

	if strings.TrimSpace(row.Date) == "" {
		return nil, invalidRow(index, "date is required")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(row.Date))
	if err != nil {
		return nil, invalidRow(index, fmt.Sprintf("date %q is not a valid ISO-8601 date", row.Date))
	}

	if strings.TrimSpace(row.Amount) == "" {
		return nil, invalidRow(index, "amount is required")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return nil, invalidRow(index, fmt.Sprintf("amount %q is not a valid decimal", row.Amount))
	}
	if amount.Exponent() < -2 {
		return nil, invalidRow(index, fmt.Sprintf("amount %q has more than two decimal places", row.Amount))
	}

	return entity.NewTransaction(date, description, amount, defaultCategoryID, index), nil
}

func invalidRow(index int, detail string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidRow,
		fmt.Sprintf("row %d: %s", index, detail),
		domainerror.ErrInvalidRow,
	)
}
