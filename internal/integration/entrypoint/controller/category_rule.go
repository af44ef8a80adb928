// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryrule "github.com/xpress-ledger/backend/internal/application/usecase/category_rule"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryRuleController handles category rule endpoints.
type CategoryRuleController struct {
	addUseCase    *categoryrule.AddRuleUseCase
	removeUseCase *categoryrule.RemoveRuleUseCase
}

// NewCategoryRuleController creates a new category rule controller instance.
func NewCategoryRuleController(
	addUseCase *categoryrule.AddRuleUseCase,
	removeUseCase *categoryrule.RemoveRuleUseCase,
) *CategoryRuleController {
	return &CategoryRuleController{
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
	}
}

// Add handles POST /categories/:name/rules requests. Adding a pattern the
// category already owns is a no-op.
func (c *CategoryRuleController) Add(ctx *gin.Context) {
	var req dto.AddRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), categoryrule.AddRuleInput{
		CategoryName: ctx.Param("name"),
		Pattern:      req.Pattern,
		Exact:        req.Exact,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddRuleResponse{
		Added:         output.Added,
		Recategorized: dto.ToRecategorizedResponse(output.Recategorized),
	})
}

// Remove handles DELETE /categories/:name/rules requests.
func (c *CategoryRuleController) Remove(ctx *gin.Context) {
	var req dto.RemoveRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.removeUseCase.Execute(ctx.Request.Context(), categoryrule.RemoveRuleInput{
		CategoryName: ctx.Param("name"),
		Pattern:      req.Pattern,
		Exact:        req.Exact,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RemoveRuleResponse{
		Removed:       output.Removed,
		Recategorized: dto.ToRecategorizedResponse(output.Recategorized),
	})
}
