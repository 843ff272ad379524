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

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, category.Name).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT id, name, created_at FROM categories WHERE id = $1`

	var category models.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &category, nil
}

// GetByName retrieves a category by its unique name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT id, name, created_at FROM categories WHERE name = $1`

	var category models.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category by name: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetCourseIDs retrieves the ids of all courses filed under a category
func (r *CategoryRepository) GetCourseIDs(ctx context.Context, categoryID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM courses WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
