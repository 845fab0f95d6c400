package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/usecase/goal"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase        *goal.ListGoalsUseCase
	createUseCase      *goal.CreateGoalUseCase
	updateUseCase      *goal.UpdateGoalUseCase
	deleteUseCase      *goal.DeleteGoalUseCase
	contributeUseCase  *goal.AddContributionUseCase
	suggestionsUseCase *goal.GetSuggestionsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.AddContributionUseCase,
	suggestionsUseCase *goal.GetSuggestionsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		contributeUseCase:  contributeUseCase,
		suggestionsUseCase: suggestionsUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := goal.ListGoalsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.ToGoalListResponse(output.Goals)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeMissingGoalFields),
		))
		return
	}

	input := goal.CreateGoalInput{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		TargetAmount:   req.TargetAmount,
		Category:       entity.GoalCategory(req.Category),
		Deadline:       req.Deadline,
		AutoContribute: req.AutoContribute,
	}

	if req.Priority != nil {
		priority := entity.GoalPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.MonthlyContribution != nil {
		input.MonthlyContribution = *req.MonthlyContribution
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.ToGoalResponse(output.Goal, goal.CalculateProgress(output.Goal, time.Now().UTC()))
	ctx.JSON(http.StatusCreated, dto.Success(response))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid goal ID format",
			string(domainerror.ErrCodeGoalNotFound),
		))
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeMissingGoalFields),
		))
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:              goalID,
		UserID:              userID,
		Name:                req.Name,
		Description:         req.Description,
		TargetAmount:        req.TargetAmount,
		Deadline:            req.Deadline,
		AutoContribute:      req.AutoContribute,
		MonthlyContribution: req.MonthlyContribution,
	}

	if req.Category != nil {
		goalCategory := entity.GoalCategory(*req.Category)
		input.Category = &goalCategory
	}
	if req.Priority != nil {
		priority := entity.GoalPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.ToGoalResponse(output.Goal, goal.CalculateProgress(output.Goal, time.Now().UTC()))
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid goal ID format",
			string(domainerror.ErrCodeGoalNotFound),
		))
		return
	}

	input := goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMessage("Goal deleted successfully"))
}

// Contribute handles POST /goals/:id/contribute requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid goal ID format",
			string(domainerror.ErrCodeGoalNotFound),
		))
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeInvalidContributionAmount),
		))
		return
	}

	input := goal.AddContributionInput{
		GoalID:      goalID,
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goalResponse := dto.ToGoalResponse(output.Goal, goal.CalculateProgress(output.Goal, time.Now().UTC()))
	ctx.JSON(http.StatusOK, dto.Success(gin.H{
		"goal":         goalResponse,
		"contribution": dto.ToContributionResponse(output.Contribution),
	}))
}

// Suggestions handles GET /goals/suggestions requests.
func (c *GoalController) Suggestions(ctx *gin.Context) {
	_, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	output, err := c.suggestionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.ToSuggestionListResponse(output.Suggestions)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.Error(goalErr.Message, string(goalErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"An internal error occurred",
		"",
	))
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidContributionAmount,
		domainerror.ErrCodeInvalidGoalCategory,
		domainerror.ErrCodeInvalidGoalPriority,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
