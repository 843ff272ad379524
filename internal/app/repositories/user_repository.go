package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/db"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password, photo, role, manager_id, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Photo,
		&user.Role,
		&user.ManagerID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, photo, role, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Photo, user.Role, user.ManagerID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateWithPendingTransaction creates a user together with its pending
// payment transaction in a single database transaction, so a failure cannot
// leave a half-created account behind.
func (r *UserRepository) CreateWithPendingTransaction(ctx context.Context, user *models.User, txn *models.Transaction) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password, photo, role, manager_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			user.Name, user.Email, user.Password, user.Photo, user.Role, user.ManagerID,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		txn.UserID = user.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO transactions (id, user_id, price, status)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at`,
			txn.ID, txn.UserID, txn.Price, txn.Status,
		).Scan(&txn.CreatedAt, &txn.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating transaction: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// GetStudentsByManager retrieves all students owned by a manager, newest
// first. A non-positive limit returns all of them.
func (r *UserRepository) GetStudentsByManager(ctx context.Context, managerID int64, limit int) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1 AND manager_id = $2
		ORDER BY created_at DESC
	`
	args := []interface{}{models.RoleStudent, managerID}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		student, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, photo = $4, updated_at = now()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Name, user.Email, user.Password, user.Photo, user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by ID. Enrollment rows referencing the user are
// removed by the course_students FK cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
