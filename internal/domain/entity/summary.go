// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal represents the aggregated amount and count for one category.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Count        int
}

// PeriodTotal represents per-category subtotals within one time bucket.
// Key is the canonical bucket key ("2025-03-14", "2025-03" or "2025") and
// Start is the first day of the bucket.
type PeriodTotal struct {
	Key        string
	Start      time.Time
	Total      decimal.Decimal
	Count      int
	ByCategory []CategoryTotal
}

// DatasetTotals represents the headline figures for the whole dataset.
type DatasetTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
