package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/analytics"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	getUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /analytics requests. Optional startDate and endDate query
// parameters bound the analysed window; omitted bounds fall back to the
// current month.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := analytics.GetAnalyticsInput{
		UserID: userID,
	}

	startDate, err := parseDateQuery(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid startDate format",
			string(domainerror.ErrCodeInvalidDateRange),
		))
		return
	}
	input.StartDate = startDate

	endDate, err := parseDateQuery(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"Invalid endDate format",
			string(domainerror.ErrCodeInvalidDateRange),
		))
		return
	}
	input.EndDate = endDate

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	response := dto.ToAnalyticsResponse(output)
	ctx.JSON(http.StatusOK, dto.Success(response))
}

// parseDateQuery parses an optional date query parameter. Both date-only and
// RFC 3339 values are accepted.
func parseDateQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP
// responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		statusCode := http.StatusInternalServerError
		if analyticsErr.Code == domainerror.ErrCodeInvalidDateRange {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.Error(analyticsErr.Message, string(analyticsErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"An internal error occurred",
		"",
	))
}
