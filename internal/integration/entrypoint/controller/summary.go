// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xpress-ledger/backend/internal/application/usecase/summary"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles aggregation endpoints.
type SummaryController struct {
	byCategoryUseCase *summary.TotalsByCategoryUseCase
	byPeriodUseCase   *summary.TotalsByPeriodUseCase
	totalsUseCase     *summary.GetTotalsUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	byCategoryUseCase *summary.TotalsByCategoryUseCase,
	byPeriodUseCase *summary.TotalsByPeriodUseCase,
	totalsUseCase *summary.GetTotalsUseCase,
) *SummaryController {
	return &SummaryController{
		byCategoryUseCase: byCategoryUseCase,
		byPeriodUseCase:   byPeriodUseCase,
		totalsUseCase:     totalsUseCase,
	}
}

// ByCategory handles GET /summary/categories requests. Every registered
// category appears, including those with a zero total.
func (c *SummaryController) ByCategory(ctx *gin.Context) {
	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(output))
}

// ByPeriod handles GET /summary/periods requests. Granularity comes from the
// granularity query parameter and defaults to month.
func (c *SummaryController) ByPeriod(ctx *gin.Context) {
	granularity := ctx.DefaultQuery("granularity", string(summary.GranularityMonth))

	output, err := c.byPeriodUseCase.Execute(ctx.Request.Context(), summary.TotalsByPeriodInput{
		Granularity: granularity,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodTotalsResponse(output))
}

// Totals handles GET /summary/totals requests.
func (c *SummaryController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDatasetTotalsResponse(output))
}
