// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	BudgetID  *uuid.UUID
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
// Every query is scoped to a single user.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by ID, scoped to the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRefs retrieves a transaction with its category and budget by ID,
	// scoped to the given user.
	FindByIDWithRefs(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination,
	// ordered by date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByDateRange retrieves all of a user's transactions whose date falls in
	// [start, end], joined with category and budget, ordered by date ascending.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithRefs, error)

	// SumExpensesByBudget sums the expense transactions that reference the given
	// budget within [start, end].
	SumExpensesByBudget(ctx context.Context, userID, budgetID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database. Deleted rows disappear
	// from all future aggregations.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
