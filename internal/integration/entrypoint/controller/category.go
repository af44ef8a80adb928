// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xpress-ledger/backend/internal/application/usecase/category"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	renameUseCase *category.RenameCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
	mergeUseCase  *category.MergeCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	renameUseCase *category.RenameCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	mergeUseCase *category.MergeCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		renameUseCase: renameUseCase,
		deleteUseCase: deleteUseCase,
		mergeUseCase:  mergeUseCase,
	}
}

// List handles GET /categories requests. Categories come back in creation
// order with the default first.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryEntityResponse(output.Category))
}

// Rename handles PATCH /categories/:name requests.
func (c *CategoryController) Rename(ctx *gin.Context) {
	var req dto.RenameCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), category.RenameCategoryInput{
		OldName: ctx.Param("name"),
		NewName: req.NewName,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryEntityResponse(output.Category))
}

// Delete handles DELETE /categories/:name requests. Transactions in the
// deleted category fall back to the default one.
func (c *CategoryController) Delete(ctx *gin.Context) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		Name: ctx.Param("name"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCategoryResponse{
		AffectedTransactions: output.AffectedTransactions,
	})
}

// Merge handles POST /categories/merge requests.
func (c *CategoryController) Merge(ctx *gin.Context) {
	var req dto.MergeCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.mergeUseCase.Execute(ctx.Request.Context(), category.MergeCategoriesInput{
		SourceName: req.Source,
		TargetName: req.Target,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MergeCategoriesResponse{
		MovedRules:        output.MovedRules,
		MovedTransactions: output.MovedTransactions,
		Recategorized:     dto.ToRecategorizedResponse(output.Recategorized),
	})
}
