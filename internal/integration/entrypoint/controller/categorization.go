// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// CategorizationController handles full-dataset categorization runs.
type CategorizationController struct {
	categorizeAllUseCase *categorize.CategorizeAllUseCase
}

// NewCategorizationController creates a new categorization controller instance.
func NewCategorizationController(categorizeAllUseCase *categorize.CategorizeAllUseCase) *CategorizationController {
	return &CategorizationController{
		categorizeAllUseCase: categorizeAllUseCase,
	}
}

// Run handles POST /categorize requests. Manually pinned transactions are
// reported as skipped, never reassigned.
func (c *CategorizationController) Run(ctx *gin.Context) {
	output, err := c.categorizeAllUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecategorizedResponse{
		Changed:   output.Changed,
		Unchanged: output.Unchanged,
		Skipped:   output.Skipped,
	})
}
