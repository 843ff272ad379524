package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// OverviewController serves the manager dashboard read model
type OverviewController struct {
	overviewService *services.OverviewService
	logger          zerolog.Logger
}

// NewOverviewController creates a new OverviewController
func NewOverviewController(overviewService *services.OverviewService, logger zerolog.Logger) *OverviewController {
	return &OverviewController{
		overviewService: overviewService,
		logger:          logger,
	}
}

// GetOverview returns dashboard totals and recent records for the
// authenticated manager
func (c *OverviewController) GetOverview(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	overview, err := c.overviewService.GetOverview(ctx.Request.Context(), managerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get overview success", overview))
}
