package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

// TransactionRepository handles database operations for payment transactions
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, txn.ID, txn.UserID, txn.Price, txn.Status).
		Scan(&txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by its order id
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT id, user_id, price, status, created_at, updated_at FROM transactions WHERE id = $1`

	var txn models.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&txn.ID,
		&txn.UserID,
		&txn.Price,
		&txn.Status,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("error retrieving transaction: %w", err)
	}

	return &txn, nil
}

// UpdateStatus sets the payment status for the given order id. The update
// is unconditional: a later callback overwrites a terminal status.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE transactions SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating transaction status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// HasSuccessByUser reports whether the user has at least one successful
// transaction.
func (r *TransactionRepository) HasSuccessByUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM transactions WHERE user_id = $1 AND status = $2)`,
		userID, models.TransactionSuccess).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking transactions: %w", err)
	}

	return exists, nil
}
