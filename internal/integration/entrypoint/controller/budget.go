// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/budget"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase  *budget.ListBudgetsUseCase
	panelUseCase *budget.GetPanelUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	panelUseCase *budget.GetPanelUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:  listUseCase,
		panelUseCase: panelUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Goals))
}

// Panel handles GET /budgets/panel requests.
func (c *BudgetController) Panel(ctx *gin.Context) {
	output, err := c.panelUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget panel",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPanelResponse(output))
}
