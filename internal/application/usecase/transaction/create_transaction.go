// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Type        entity.TransactionType
	Date        *time.Time // Optional, defaults to now
	CategoryID  *uuid.UUID
	BudgetID    *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateAmountAndType(input.Amount, input.Type); err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		input.Description,
		input.Type,
		date,
		input.CategoryID,
		input.BudgetID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Re-fetch with category and budget joined so the response matches listing.
	withRefs, err := uc.transactionRepo.FindByIDWithRefs(ctx, transaction.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: withRefs,
	}, nil
}

// validateAmountAndType checks the monetary and type invariants shared by
// create and update.
func validateAmountAndType(amount decimal.Decimal, transactionType entity.TransactionType) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}
