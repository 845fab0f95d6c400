package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
	}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		input.Limit = limit
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		transactionType := entity.TransactionType(typeStr)
		input.Type = &transactionType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionListResponse(output.Result)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        entity.TransactionType(req.Type),
		Date:        req.Date,
	}

	categoryID, budgetID, err := parseTransactionRefs(req.CategoryID, req.BudgetID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			err.Error(),
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}
	input.CategoryID = categoryID
	input.BudgetID = budgetID

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusCreated, dto.Success(response))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid transaction ID format",
			string(domainerror.ErrCodeTransactionNotFound),
		))
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
	}

	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	categoryID, budgetID, err := parseTransactionRefs(req.CategoryID, req.BudgetID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			err.Error(),
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}
	input.CategoryID = categoryID
	input.BudgetID = budgetID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid transaction ID format",
			string(domainerror.ErrCodeTransactionNotFound),
		))
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMessage("Transaction deleted successfully"))
}

// parseTransactionRefs parses the optional category and budget ID strings.
func parseTransactionRefs(categoryIDStr, budgetIDStr *string) (*uuid.UUID, *uuid.UUID, error) {
	var categoryID, budgetID *uuid.UUID

	if categoryIDStr != nil && *categoryIDStr != "" {
		id, err := uuid.Parse(*categoryIDStr)
		if err != nil {
			return nil, nil, errors.New("invalid category ID format")
		}
		categoryID = &id
	}

	if budgetIDStr != nil && *budgetIDStr != "" {
		id, err := uuid.Parse(*budgetIDStr)
		if err != nil {
			return nil, nil, errors.New("invalid budget ID format")
		}
		budgetID = &id
	}

	return categoryID, budgetID, nil
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		statusCode := c.getStatusCodeForTransactionError(transactionErr.Code)
		ctx.JSON(statusCode, dto.Error(transactionErr.Message, string(transactionErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"An internal error occurred",
		"",
	))
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
