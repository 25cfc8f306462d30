// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	insightController     *controller.InsightController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	insightController *controller.InsightController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		insightController:     insightController,
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
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		v1.GET("/categories", r.categoryController.List)

		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.GET("/panel", r.budgetController.Panel)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", r.dashboardController.Overview)
			dashboard.GET("/breakdown", r.dashboardController.Breakdown)
		}

		v1.POST("/insights", r.insightController.GetInsights)
		v1.POST("/receipts/scan", r.insightController.ScanReceipt)
	}
}
