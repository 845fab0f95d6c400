// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryResponse represents a category in API responses. A missing userId
// marks a shared default category.
type CategoryResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Icon   string  `json:"icon"`
	Type   string  `json:"type"`
	UserID *string `json:"userId,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
		Type:  string(c.Type),
	}

	if c.UserID != nil {
		userID := c.UserID.String()
		response.UserID = &userID
	}

	return response
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
