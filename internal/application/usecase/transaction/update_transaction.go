// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal
	Description   *string
	Type          *entity.TransactionType
	Date          *time.Time
	CategoryID    *uuid.UUID
	BudgetID      *uuid.UUID
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if err := validateAmountAndType(transaction.Amount, transaction.Type); err != nil {
		return nil, err
	}

	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.CategoryID != nil {
		transaction.CategoryID = input.CategoryID
	}
	if input.BudgetID != nil {
		transaction.BudgetID = input.BudgetID
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	withRefs, err := uc.transactionRepo.FindByIDWithRefs(ctx, transaction.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: withRefs,
	}, nil
}
