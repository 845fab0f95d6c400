// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Description         string          `gorm:"type:text"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Category            string          `gorm:"type:varchar(30);not null"`
	Priority            string          `gorm:"type:varchar(10);not null;default:'medium'"`
	Deadline            *time.Time      `gorm:"type:date"`
	Status              string          `gorm:"type:varchar(15);not null;default:'active';index"`
	AutoContribute      bool            `gorm:"not null;default:false"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	LastContribution    *time.Time      `gorm:"type:timestamp"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Contributions []GoalContributionModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		Description:         m.Description,
		TargetAmount:        m.TargetAmount,
		CurrentAmount:       m.CurrentAmount,
		Category:            entity.GoalCategory(m.Category),
		Priority:            entity.GoalPriority(m.Priority),
		Deadline:            m.Deadline,
		Status:              entity.GoalStatus(m.Status),
		AutoContribute:      m.AutoContribute,
		MonthlyContribution: m.MonthlyContribution,
		LastContribution:    m.LastContribution,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToEntityWithContributions converts a GoalModel with its preloaded
// contributions to a GoalWithContributions entity.
func (m *GoalModel) ToEntityWithContributions() *entity.GoalWithContributions {
	contributions := make([]*entity.GoalContribution, len(m.Contributions))
	for i, cm := range m.Contributions {
		contributions[i] = cm.ToEntity()
	}
	return &entity.GoalWithContributions{
		Goal:          m.ToEntity(),
		Contributions: contributions,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                  goal.ID,
		UserID:              goal.UserID,
		Name:                goal.Name,
		Description:         goal.Description,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		Category:            string(goal.Category),
		Priority:            string(goal.Priority),
		Deadline:            goal.Deadline,
		Status:              string(goal.Status),
		AutoContribute:      goal.AutoContribute,
		MonthlyContribution: goal.MonthlyContribution,
		LastContribution:    goal.LastContribution,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}
