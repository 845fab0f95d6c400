package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/budget"
	"github.com/budget-planner/backend/internal/application/usecase/category"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget and category endpoints.
type BudgetController struct {
	listUseCase           *budget.ListBudgetsUseCase
	createUseCase         *budget.CreateBudgetUseCase
	listCategoriesUseCase *category.ListCategoriesUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	listCategoriesUseCase *category.ListCategoriesUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := budget.ListBudgetsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetListResponse(output.Budgets)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeMissingBudgetFields),
		))
		return
	}

	input := budget.CreateBudgetInput{
		UserID:      userID,
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
	}

	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusCreated, dto.Success(response))
}

// ListCategories handles GET /budgets/categories requests. Categories live
// alongside budgets because clients fetch them when building the budget form.
func (c *BudgetController) ListCategories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := category.ListCategoriesInput{
		UserID: userID,
	}

	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error(
			"Failed to retrieve categories",
			"",
		))
		return
	}

	response := dto.ToCategoryListResponse(output.Categories)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// handleBudgetError handles budget errors and returns appropriate HTTP
// responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.Error(budgetErr.Message, string(budgetErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"An internal error occurred",
		"",
	))
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
