package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// PaymentController receives payment-gateway webhook notifications
type PaymentController struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// HandleCallback applies a gateway status notification to its transaction
func (c *PaymentController) HandleCallback(ctx *gin.Context) {
	var req dto.PaymentCallbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid payment callback payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.paymentService.HandleCallback(ctx.Request.Context(), &req); err != nil {
		c.logger.Error().Err(err).Str("orderId", req.OrderID).Msg("Payment callback failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Handle payment success"))
}
