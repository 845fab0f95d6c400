package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getStatsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getStatsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{
		getStatsUseCase: getStatsUseCase,
	}
}

// GetStats handles GET /dashboard/stats requests.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"User not authenticated",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := dashboard.GetStatsInput{
		UserID: userID,
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error(
			"Failed to retrieve dashboard stats",
			"",
		))
		return
	}

	response := dto.ToDashboardStatsResponse(output)
	ctx.JSON(http.StatusOK, dto.Success(response))
}
