// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// UncategorizedName is the label used for transactions without a resolvable category.
const UncategorizedName = "Uncategorized"

// UncategorizedColor is the color used for transactions without a resolvable category.
const UncategorizedColor = "#666"

// DefaultCategoryColor is the default color for new categories.
const DefaultCategoryColor = "#3f51b5"

// DefaultCategoryIcon is the default icon for new categories.
const DefaultCategoryIcon = "category"

// Category represents a transaction category. A nil UserID marks a shared
// default category visible to every user.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	Type      CategoryType
	UserID    *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Empty color and icon fall back
// to the defaults.
func NewCategory(name, color, icon string, categoryType CategoryType, userID *uuid.UUID) *Category {
	if color == "" {
		color = DefaultCategoryColor
	}
	if icon == "" {
		icon = DefaultCategoryIcon
	}

	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		Type:      categoryType,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
