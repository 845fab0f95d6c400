// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Deletion is hard: removed rows vanish from every aggregation.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:timestamp;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	BudgetID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Budget   *BudgetModel   `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		Type:        entity.TransactionType(m.Type),
		Date:        m.Date,
		CategoryID:  m.CategoryID,
		BudgetID:    m.BudgetID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithRefs converts a TransactionModel with its preloaded category and
// budget to a TransactionWithRefs entity.
func (m *TransactionModel) ToEntityWithRefs() *entity.TransactionWithRefs {
	result := &entity.TransactionWithRefs{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Budget != nil {
		result.Budget = m.Budget.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Type:        string(transaction.Type),
		Date:        transaction.Date,
		CategoryID:  transaction.CategoryID,
		BudgetID:    transaction.BudgetID,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
