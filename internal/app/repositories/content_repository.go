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

// ContentRepository handles database operations for course contents
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = `id, course_id, title, content_type, youtube_id, body, created_at, updated_at`

func scanContent(row pgx.Row) (*models.CourseContent, error) {
	var content models.CourseContent
	err := row.Scan(
		&content.ID,
		&content.CourseID,
		&content.Title,
		&content.Type,
		&content.YoutubeID,
		&content.Body,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Create creates a new content item
func (r *ContentRepository) Create(ctx context.Context, content *models.CourseContent) error {
	query := `
		INSERT INTO course_contents (course_id, title, content_type, youtube_id, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		content.CourseID, content.Title, content.Type, content.YoutubeID, content.Body,
	).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating content: %w", err)
	}

	return nil
}

// GetByID retrieves a content item by ID
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*models.CourseContent, error) {
	query := `SELECT ` + contentColumns + ` FROM course_contents WHERE id = $1`

	content, err := scanContent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving content: %w", err)
	}

	return content, nil
}

// GetByCourse retrieves all content items for a course in creation order
func (r *ContentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.CourseContent, error) {
	query := `SELECT ` + contentColumns + ` FROM course_contents WHERE course_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*models.CourseContent
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contents, nil
}

// CountByManagerAndType counts content items of the given type across all
// courses owned by a manager.
func (r *ContentRepository) CountByManagerAndType(ctx context.Context, managerID int64, contentType models.ContentType) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM course_contents cc
		JOIN courses c ON c.id = cc.course_id
		WHERE c.manager_id = $1 AND cc.content_type = $2
	`

	var count int
	err := r.db.QueryRow(ctx, query, managerID, contentType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting contents: %w", err)
	}

	return count, nil
}

// Update updates an existing content item
func (r *ContentRepository) Update(ctx context.Context, content *models.CourseContent) error {
	query := `
		UPDATE course_contents
		SET course_id = $1, title = $2, content_type = $3, youtube_id = $4, body = $5, updated_at = now()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		content.CourseID, content.Title, content.Type, content.YoutubeID, content.Body, content.ID)
	if err != nil {
		return fmt.Errorf("error updating content: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

// Delete deletes a content item by ID
func (r *ContentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_contents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting content: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}
