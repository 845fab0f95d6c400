// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// GoalContributionModel represents the goal_contributions table in the
// database. Rows are append-only; they are removed only when the owning goal
// is deleted.
type GoalContributionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description      string          `gorm:"type:varchar(255)"`
	ContributionDate time.Time       `gorm:"type:timestamp;not null;index"`
	Type             string          `gorm:"type:varchar(15);not null;default:'manual'"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalContributionModel.
func (GoalContributionModel) TableName() string {
	return "goal_contributions"
}

// ToEntity converts a GoalContributionModel to a domain GoalContribution entity.
func (m *GoalContributionModel) ToEntity() *entity.GoalContribution {
	return &entity.GoalContribution{
		ID:               m.ID,
		GoalID:           m.GoalID,
		UserID:           m.UserID,
		Amount:           m.Amount,
		Description:      m.Description,
		ContributionDate: m.ContributionDate,
		Type:             entity.ContributionType(m.Type),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// GoalContributionFromEntity creates a GoalContributionModel from a domain
// GoalContribution entity.
func GoalContributionFromEntity(contribution *entity.GoalContribution) *GoalContributionModel {
	return &GoalContributionModel{
		ID:               contribution.ID,
		GoalID:           contribution.GoalID,
		UserID:           contribution.UserID,
		Amount:           contribution.Amount,
		Description:      contribution.Description,
		ContributionDate: contribution.ContributionDate,
		Type:             string(contribution.Type),
		CreatedAt:        contribution.CreatedAt,
		UpdatedAt:        contribution.UpdatedAt,
	}
}
