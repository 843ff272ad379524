package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

// CourseWithStats is a course joined with its category name and roster size
type CourseWithStats struct {
	models.Course
	CategoryName string
	StudentCount int
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, thumbnail, description, tagline, category_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Thumbnail, course.Description, course.Tagline,
		course.CategoryID, course.ManagerID,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, thumbnail, description, tagline, category_id, manager_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Thumbnail,
		&course.Description,
		&course.Tagline,
		&course.CategoryID,
		&course.ManagerID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// listWithStats builds the course list projection joined with category name
// and roster size.
func (r *CourseRepository) listWithStats(ctx context.Context, where squirrel.Sqlizer, limit uint64) ([]*CourseWithStats, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.thumbnail", "c.description", "c.tagline",
		"c.category_id", "c.manager_id", "c.created_at", "c.updated_at",
		"cat.name AS category_name",
		"(SELECT COUNT(*) FROM course_students cs WHERE cs.course_id = c.id) AS student_count",
	).
		From("courses c").
		Join("categories cat ON cat.id = c.category_id").
		Where(where).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []*CourseWithStats
	for rows.Next() {
		var course CourseWithStats
		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Thumbnail,
			&course.Description,
			&course.Tagline,
			&course.CategoryID,
			&course.ManagerID,
			&course.CreatedAt,
			&course.UpdatedAt,
			&course.CategoryName,
			&course.StudentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

// GetByManager retrieves the courses owned by a manager, newest first.
// A zero limit returns all of them.
func (r *CourseRepository) GetByManager(ctx context.Context, managerID int64, limit uint64) ([]*CourseWithStats, error) {
	return r.listWithStats(ctx, squirrel.Eq{"c.manager_id": managerID}, limit)
}

// GetWithStatsByID retrieves a single course with category name and roster size
func (r *CourseRepository) GetWithStatsByID(ctx context.Context, id int64) (*CourseWithStats, error) {
	courses, err := r.listWithStats(ctx, squirrel.Eq{"c.id": id}, 1)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return courses[0], nil
}

// CountByManager counts the courses owned by a manager
func (r *CourseRepository) CountByManager(ctx context.Context, managerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE manager_id = $1`, managerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, thumbnail = $2, description = $3, tagline = $4, category_id = $5, updated_at = now()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.Thumbnail, course.Description, course.Tagline,
		course.CategoryID, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Content rows keep their course_id and are
// left behind; enrollment rows are removed by the junction FK cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
