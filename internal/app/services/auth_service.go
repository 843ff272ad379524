package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/auth"
	"github.com/ardiansetya/coursehub/internal/pkg/payment"
)

// authUserStore is the subset of the user repository used by AuthService
type authUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateWithPendingTransaction(ctx context.Context, user *models.User, txn *models.Transaction) error
}

// authTransactionStore is the subset of the transaction repository used by AuthService
type authTransactionStore interface {
	HasSuccessByUser(ctx context.Context, userID int64) (bool, error)
}

// AuthService handles registration and authentication
type AuthService struct {
	users       authUserStore
	txns        authTransactionStore
	gateway     payment.Gateway
	jwtService  *auth.JWTService
	signupPrice int64
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users authUserStore,
	txns authTransactionStore,
	gateway payment.Gateway,
	jwtService *auth.JWTService,
	signupPrice int64,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		txns:        txns,
		gateway:     gateway,
		jwtService:  jwtService,
		signupPrice: signupPrice,
		logger:      logger,
	}
}

// SignUp registers a manager account together with its pending payment
// transaction, then asks the gateway for a checkout session. The account and
// the pending transaction are committed before the gateway round trip, so a
// gateway failure leaves a retriable pending record rather than a dangling
// payment for a user that was never created.
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleManager,
	}
	txn := &models.Transaction{
		ID:     uuid.NewString(),
		Price:  s.signupPrice,
		Status: models.TransactionPending,
	}

	if err := s.users.CreateWithPendingTransaction(ctx, user, txn); err != nil {
		return nil, err
	}

	redirectURL, err := s.gateway.CreateCheckout(ctx, txn.ID, txn.Price, user.Email)
	if err != nil {
		s.logger.Error().Err(err).
			Str("orderId", txn.ID).
			Int64("userId", user.ID).
			Msg("Checkout session creation failed")
		return nil, apperrors.NewGatewayError("failed to create payment session")
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("orderId", txn.ID).
		Msg("Manager registered, awaiting payment")

	return &dto.SignUpResponse{MidtransPaymentURL: redirectURL}, nil
}

// SignIn authenticates a user and issues a JWT. Student accounts are only
// admitted once at least one of their transactions has settled successfully;
// manager accounts skip that gate.
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleStudent {
		paid, err := s.txns.HasSuccessByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking payment status: %w", err)
		}
		if !paid {
			return nil, apperrors.ErrPaymentRequired
		}
	}

	token, _, err := s.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.SignInResponse{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
		Role:  string(user.Role),
	}, nil
}
