// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// handleDomainError writes the typed domain error as a JSON response with
// the matching HTTP status. Unrecognized errors become a generic 500.
func handleDomainError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(statusForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var sumErr *domainerror.SummaryError
	if errors.As(err, &sumErr) {
		ctx.JSON(statusForSummaryError(sumErr.Code), dto.ErrorResponse{
			Error: sumErr.Message,
			Code:  string(sumErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForCategoryError maps category error codes to HTTP status codes.
func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeCategoryReserved:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameEmpty,
		domainerror.ErrCodeSameCategory,
		domainerror.ErrCodeRulePatternEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForTransactionError maps transaction error codes to HTTP status codes.
func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRow,
		domainerror.ErrCodeUnknownCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForSummaryError maps summary error codes to HTTP status codes.
func statusForSummaryError(code domainerror.SummaryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGranularity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
