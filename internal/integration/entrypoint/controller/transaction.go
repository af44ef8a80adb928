// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/application/usecase/dataset"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles dataset and per-transaction endpoints.
type TransactionController struct {
	importUseCase        *dataset.ImportTransactionsUseCase
	listUseCase          *dataset.ListTransactionsUseCase
	setManualUseCase     *categorize.SetManualCategoryUseCase
	categorizeOneUseCase *categorize.CategorizeOneUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	importUseCase *dataset.ImportTransactionsUseCase,
	listUseCase *dataset.ListTransactionsUseCase,
	setManualUseCase *categorize.SetManualCategoryUseCase,
	categorizeOneUseCase *categorize.CategorizeOneUseCase,
) *TransactionController {
	return &TransactionController{
		importUseCase:        importUseCase,
		listUseCase:          listUseCase,
		setManualUseCase:     setManualUseCase,
		categorizeOneUseCase: categorizeOneUseCase,
	}
}

// Import handles POST /transactions/import requests. It replaces the working
// dataset with the posted rows and runs a categorization pass over them.
func (c *TransactionController) Import(ctx *gin.Context) {
	var req dto.ImportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	rows := make([]dataset.Row, len(req.Rows))
	for i, row := range req.Rows {
		rows[i] = dataset.Row{
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
		}
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), dataset.ImportTransactionsInput{Rows: rows})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportTransactionsResponse{
		Loaded:        output.Loaded,
		Recategorized: dto.ToRecategorizedResponse(output.Recategorized),
	})
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := dataset.ListTransactionsInput{
		Search: ctx.Query("search"),
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse(time.DateOnly, startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse(time.DateOnly, endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}
	if categories := ctx.Query("categories"); categories != "" {
		input.Categories = strings.Split(categories, ",")
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// SetCategory handles PUT /transactions/:id/category requests. The assignment
// is manual: it pins the transaction and teaches the target category the
// transaction's description as an exact rule.
func (c *TransactionController) SetCategory(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.SetCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.setManualUseCase.Execute(ctx.Request.Context(), categorize.SetManualCategoryInput{
		TransactionID: transactionID,
		CategoryName:  req.Category,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SetCategoryResponse{
		CategoryID:    output.CategoryID.String(),
		LearnedRule:   output.LearnedRule,
		Recategorized: dto.ToRecategorizedResponse(output.Recategorized),
	})
}

// Recategorize handles POST /transactions/:id/recategorize requests. With
// force=true the manual override is cleared and the rules decide again.
func (c *TransactionController) Recategorize(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	output, err := c.categorizeOneUseCase.Execute(ctx.Request.Context(), categorize.CategorizeOneInput{
		TransactionID:      transactionID,
		ForceOverrideClear: ctx.Query("force") == "true",
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecategorizeOneResponse{
		Result:     output.Result,
		CategoryID: output.CategoryID.String(),
	})
}
