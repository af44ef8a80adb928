// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xpress-ledger/backend/config"
	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/application/usecase/categorize"
	"github.com/xpress-ledger/backend/internal/application/usecase/category"
	categoryrule "github.com/xpress-ledger/backend/internal/application/usecase/category_rule"
	"github.com/xpress-ledger/backend/internal/application/usecase/dataset"
	"github.com/xpress-ledger/backend/internal/application/usecase/rulebook"
	"github.com/xpress-ledger/backend/internal/application/usecase/summary"
	"github.com/xpress-ledger/backend/internal/infra/server/router"
	"github.com/xpress-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/xpress-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *router.Router
	Store    adapter.TransactionStore
	Registry adapter.CategoryRegistry
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The category registry is seeded from the stored rulebook; on first run the
// default registry content is written back so a rulebook always exists.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	store := persistence.NewTransactionStore()
	registry := persistence.NewCategoryRegistry()
	rulebookRepo := persistence.NewRulebookRepository(db)

	ctx := context.Background()
	saved, err := rulebookRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rulebook: %w", err)
	}
	if len(saved) > 0 {
		if err := registry.Restore(ctx, saved); err != nil {
			return nil, fmt.Errorf("failed to restore rulebook: %w", err)
		}
	} else {
		initial, err := registry.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read registry: %w", err)
		}
		if err := rulebookRepo.SaveAll(ctx, initial); err != nil {
			return nil, fmt.Errorf("failed to save initial rulebook: %w", err)
		}
	}

	// Dataset use cases
	importTransactionsUseCase := dataset.NewImportTransactionsUseCase(store, registry)
	listTransactionsUseCase := dataset.NewListTransactionsUseCase(store, registry)

	// Categorization use cases
	categorizeAllUseCase := categorize.NewCategorizeAllUseCase(store, registry)
	categorizeOneUseCase := categorize.NewCategorizeOneUseCase(store, registry)
	setManualCategoryUseCase := categorize.NewSetManualCategoryUseCase(store, registry, rulebookRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(registry)
	createCategoryUseCase := category.NewCreateCategoryUseCase(registry, rulebookRepo)
	renameCategoryUseCase := category.NewRenameCategoryUseCase(registry, rulebookRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(store, registry, rulebookRepo)
	mergeCategoriesUseCase := category.NewMergeCategoriesUseCase(store, registry, rulebookRepo)

	// Rule use cases
	addRuleUseCase := categoryrule.NewAddRuleUseCase(store, registry, rulebookRepo)
	removeRuleUseCase := categoryrule.NewRemoveRuleUseCase(store, registry, rulebookRepo)

	// Rulebook use cases
	exportRulesUseCase := rulebook.NewExportRulesUseCase(registry)
	importRulesUseCase := rulebook.NewImportRulesUseCase(store, registry, rulebookRepo)

	// Summary use cases
	totalsByCategoryUseCase := summary.NewTotalsByCategoryUseCase(store, registry)
	totalsByPeriodUseCase := summary.NewTotalsByPeriodUseCase(store, registry)
	getTotalsUseCase := summary.NewGetTotalsUseCase(store)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		importTransactionsUseCase,
		listTransactionsUseCase,
		setManualCategoryUseCase,
		categorizeOneUseCase,
	)

	categorizationController := controller.NewCategorizationController(categorizeAllUseCase)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		renameCategoryUseCase,
		deleteCategoryUseCase,
		mergeCategoriesUseCase,
	)

	categoryRuleController := controller.NewCategoryRuleController(
		addRuleUseCase,
		removeRuleUseCase,
	)

	rulebookController := controller.NewRulebookController(
		exportRulesUseCase,
		importRulesUseCase,
	)

	summaryController := controller.NewSummaryController(
		totalsByCategoryUseCase,
		totalsByPeriodUseCase,
		getTotalsUseCase,
	)

	r := router.NewRouter(
		healthController,
		transactionController,
		categorizationController,
		categoryController,
		categoryRuleController,
		rulebookController,
		summaryController,
	)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Router:   r,
		Store:    store,
		Registry: registry,
	}, nil
}
