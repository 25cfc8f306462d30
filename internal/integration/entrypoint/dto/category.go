// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
)

// CategoryResponse represents a category and its display metadata.
type CategoryResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse builds the category registry DTO in registry order.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		info := c.Info()
		responses = append(responses, CategoryResponse{
			Name:  info.Name,
			Icon:  info.Icon,
			Color: info.Color,
		})
	}
	return CategoryListResponse{Categories: responses}
}
