package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// ContentController handles course content endpoints
type ContentController struct {
	contentService *services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

// GetContent returns a single content item including its payload
func (c *ContentController) GetContent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	content, err := c.contentService.GetContent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get content success", content))
}

// CreateContent adds a content item to a course
func (c *ContentController) CreateContent(ctx *gin.Context) {
	var req dto.MutateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid content payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	content, err := c.contentService.CreateContent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Create content success", content))
}

// UpdateContent replaces a content item's fields
func (c *ContentController) UpdateContent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	var req dto.MutateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid content payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	content, err := c.contentService.UpdateContent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Update content success", content))
}

// DeleteContent removes a content item
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.contentService.DeleteContent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Delete content success"))
}
