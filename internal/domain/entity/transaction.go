// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single bank transaction in the working dataset.
// Amounts are signed fixed-point decimals: negative for debits, positive for
// credits. The description is immutable once ingested; only the category
// assignment and the override flag change over the transaction's lifetime.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	CategoryID  uuid.UUID // Always set; defaults to the reserved category
	Override    bool      // Manual assignment, protected from auto re-matching
	Position    int       // Ingestion order within the dataset
}

// NewTransaction creates a new Transaction entity assigned to the given
// default category. IDs are assigned once on ingestion and stay stable for
// the session.
func NewTransaction(date time.Time, description string, amount decimal.Decimal, defaultCategoryID uuid.UUID, position int) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		CategoryID:  defaultCategoryID,
		Override:    false,
		Position:    position,
	}
}

// IsDebit reports whether the transaction is an expense.
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// Clone returns a copy of the transaction. The store hands out clones so
// callers cannot mutate transactions behind its back.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// TransactionWithCategory pairs a transaction with its resolved category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
