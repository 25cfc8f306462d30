// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alvaro-malheiros/pipo-budget-manager/config"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/budget"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/dashboard"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/insight"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/transaction"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/infra/server/router"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/adapters"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/cache"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/email"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/controller"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, budgets *entity.BudgetGoalSet) (*Injector, error) {
	// Create the transaction store
	store, err := persistence.NewTransactionStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transaction store: %w", err)
	}

	// Create adapters/services
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	var insightCache adapter.InsightCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		insightCache = cache.NewInsightCache(client)
	}

	var alertSender adapter.AlertSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.AlertEmail != "" {
		alertSender = email.NewResendClient(
			cfg.Email.ResendAPIKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.AlertEmail,
		)
	} else {
		slog.Info("Over-budget email alerts disabled, Resend is not configured")
	}

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(store)
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(store, budgets, alertSender)
	removeTransactionUseCase := transaction.NewRemoveTransactionUseCase(store)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgets)
	getPanelUseCase := budget.NewGetPanelUseCase(store, budgets)

	// Create dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(store)
	getBreakdownUseCase := dashboard.NewGetBreakdownUseCase(store)

	// Create insight use cases
	getInsightsUseCase := insight.NewGetInsightsUseCase(store, budgets, geminiService, insightCache, cfg.Redis.InsightTTL)
	scanReceiptUseCase := insight.NewScanReceiptUseCase(geminiService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		recordTransactionUseCase,
		removeTransactionUseCase,
	)

	categoryController := controller.NewCategoryController()

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getPanelUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getOverviewUseCase,
		getBreakdownUseCase,
	)

	insightController := controller.NewInsightController(
		getInsightsUseCase,
		scanReceiptUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		budgetController,
		dashboardController,
		insightController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
