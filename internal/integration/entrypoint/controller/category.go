// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/dto"
)

// CategoryController handles category registry endpoints.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List handles GET /categories requests. The registry is fixed, so the
// response is always the same.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(entity.Categories()))
}
