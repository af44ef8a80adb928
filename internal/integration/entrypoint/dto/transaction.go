// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/application/usecase/dataset"
)

// TransactionRowRequest is one normalized ingestion row in an import request.
type TransactionRowRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// ImportTransactionsRequest represents the request body for dataset import.
type ImportTransactionsRequest struct {
	Rows []TransactionRowRequest `json:"rows" binding:"required"`
}

// RecategorizedResponse reports the outcome of a categorization pass.
type RecategorizedResponse struct {
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
}

// ImportTransactionsResponse represents the response for dataset import.
type ImportTransactionsResponse struct {
	Loaded        int                   `json:"loaded"`
	Recategorized RecategorizedResponse `json:"recategorized"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Override     bool            `json:"override"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// SetCategoryRequest represents the request body for a manual assignment.
type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SetCategoryResponse represents the response for a manual assignment.
type SetCategoryResponse struct {
	CategoryID    string                `json:"category_id"`
	LearnedRule   bool                  `json:"learned_rule"`
	Recategorized RecategorizedResponse `json:"recategorized"`
}

// RecategorizeOneResponse represents the response for single recategorization.
type RecategorizeOneResponse struct {
	Result     string `json:"result"`
	CategoryID string `json:"category_id"`
}

// ToRecategorizedResponse converts categorization counts to the response form.
func ToRecategorizedResponse(counts categorize.Counts) RecategorizedResponse {
	return RecategorizedResponse{
		Changed:   counts.Changed,
		Unchanged: counts.Unchanged,
		Skipped:   counts.Skipped,
	}
}

// ToTransactionListResponse converts a listing output to the response form.
func ToTransactionListResponse(output *dataset.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, tx := range output.Transactions {
		transactions[i] = TransactionResponse{
			ID:           tx.ID.String(),
			Date:         tx.Date.Format(time.DateOnly),
			Description:  tx.Description,
			Amount:       tx.Amount,
			CategoryID:   tx.CategoryID.String(),
			CategoryName: tx.CategoryName,
			Override:     tx.Override,
		}
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        output.Total,
	}
}
