// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/dashboard"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase  *dashboard.GetOverviewUseCase
	breakdownUseCase *dashboard.GetBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	breakdownUseCase *dashboard.GetBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase:  overviewUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Breakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) Breakdown(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}
