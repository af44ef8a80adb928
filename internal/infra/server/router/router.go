// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/xpress-ledger/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	transactionController    *controller.TransactionController
	categorizationController *controller.CategorizationController
	categoryController       *controller.CategoryController
	categoryRuleController   *controller.CategoryRuleController
	rulebookController       *controller.RulebookController
	summaryController        *controller.SummaryController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categorizationController *controller.CategorizationController,
	categoryController *controller.CategoryController,
	categoryRuleController *controller.CategoryRuleController,
	rulebookController *controller.RulebookController,
	summaryController *controller.SummaryController,
) *Router {
	return &Router{
		healthController:         healthController,
		transactionController:    transactionController,
		categorizationController: categorizationController,
		categoryController:       categoryController,
		categoryRuleController:   categoryRuleController,
		rulebookController:       rulebookController,
		summaryController:        summaryController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.POST("/import", r.transactionController.Import)
			transactions.GET("", r.transactionController.List)
			transactions.PUT("/:id/category", r.transactionController.SetCategory)
			transactions.POST("/:id/recategorize", r.transactionController.Recategorize)
		}

		v1.POST("/categorize", r.categorizationController.Run)

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.POST("/merge", r.categoryController.Merge)
			categories.PATCH("/:name", r.categoryController.Rename)
			categories.DELETE("/:name", r.categoryController.Delete)
			categories.POST("/:name/rules", r.categoryRuleController.Add)
			categories.DELETE("/:name/rules", r.categoryRuleController.Remove)
		}

		rulebook := v1.Group("/rulebook")
		{
			rulebook.GET("", r.rulebookController.Export)
			rulebook.POST("", r.rulebookController.Import)
		}

		summary := v1.Group("/summary")
		{
			summary.GET("/categories", r.summaryController.ByCategory)
			summary.GET("/periods", r.summaryController.ByPeriod)
			summary.GET("/totals", r.summaryController.Totals)
		}
	}
}
