// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xpress-ledger/backend/internal/application/usecase/rulebook"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// RulebookController handles rule definition export and import endpoints.
type RulebookController struct {
	exportUseCase *rulebook.ExportRulesUseCase
	importUseCase *rulebook.ImportRulesUseCase
}

// NewRulebookController creates a new rulebook controller instance.
func NewRulebookController(
	exportUseCase *rulebook.ExportRulesUseCase,
	importUseCase *rulebook.ImportRulesUseCase,
) *RulebookController {
	return &RulebookController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /rulebook requests.
func (c *RulebookController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExportRulesResponse(output))
}

// Import handles POST /rulebook requests. The batch is all-or-nothing: a
// single bad definition rejects the whole import.
func (c *RulebookController) Import(ctx *gin.Context) {
	var req dto.ImportRulesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), dto.ToImportRulesInput(req))
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportRulesResponse{
		ImportedCategories: output.ImportedCategories,
		ImportedRules:      output.ImportedRules,
		Recategorized:      dto.ToRecategorizedResponse(output.Recategorized),
	})
}
