package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
)

// paymentTransactionStore is the subset of the transaction repository used by PaymentService
type paymentTransactionStore interface {
	UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error
}

// PaymentService relays payment-gateway notifications onto transaction records
type PaymentService struct {
	txns   paymentTransactionStore
	logger zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txns paymentTransactionStore, logger zerolog.Logger) *PaymentService {
	return &PaymentService{txns: txns, logger: logger}
}

// HandleCallback maps a gateway notification onto the referenced transaction.
// Unrecognized status codes are acknowledged without touching storage, so the
// gateway never retries codes we do not track. A recognized code always
// overwrites the current status, including a terminal one: the gateway is the
// source of truth and notifications may arrive out of order.
func (s *PaymentService) HandleCallback(ctx context.Context, req *dto.PaymentCallbackRequest) error {
	var status models.TransactionStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		status = models.TransactionSuccess
	case "deny", "cancel", "expire", "failure":
		status = models.TransactionFailed
	default:
		s.logger.Debug().
			Str("orderId", req.OrderID).
			Str("transactionStatus", req.TransactionStatus).
			Msg("Ignoring unhandled gateway status")
		return nil
	}

	if err := s.txns.UpdateStatus(ctx, req.OrderID, status); err != nil {
		return fmt.Errorf("error updating transaction %s: %w", req.OrderID, err)
	}

	s.logger.Info().
		Str("orderId", req.OrderID).
		Str("status", string(status)).
		Msg("Transaction status updated from gateway callback")

	return nil
}
