// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// AuthController handles registration and authentication endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SignUp registers a manager account and returns the payment checkout URL
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid sign-up payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.SignUp(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Sign-up failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Sign up success", resp))
}

// SignIn authenticates a user and returns a bearer token
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid sign-in payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.SignIn(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sign in success", resp))
}
