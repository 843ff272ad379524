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
	"github.com/ardiansetya/coursehub/internal/pkg/dberrors"
)

// EnrollmentRepository handles the course_students junction between
// students and courses. A single junction row is the enrollment, so the
// course roster and the student's course list cannot drift apart.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// IsEnrolled checks if a student is enrolled in a specific course
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	query := squirrel.Select("1").
		From("course_students").
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// Enroll adds a student to a course roster
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID, studentID int64) error {
	query := squirrel.Insert("course_students").
		Columns("course_id", "student_id").
		Values(courseID, studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		// Two concurrent enrolls can both pass the IsEnrolled check
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Unenroll removes a student from a course roster. Removing a link that
// does not exist is a no-op, not an error.
func (r *EnrollmentRepository) Unenroll(ctx context.Context, courseID, studentID int64) error {
	query := squirrel.Delete("course_students").
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetStudentsByCourse retrieves all students enrolled in a course
func (r *EnrollmentRepository) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.User, error) {
	query := squirrel.Select(
		"u.id", "u.name", "u.email", "u.password", "u.photo", "u.role",
		"u.manager_id", "u.created_at", "u.updated_at",
	).
		From("course_students cs").
		Join("users u ON u.id = cs.student_id").
		Where("cs.course_id = ?", courseID).
		OrderBy("cs.enrolled_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		student, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// GetCoursesByStudent retrieves all courses a student is enrolled in,
// joined with their category names.
func (r *EnrollmentRepository) GetCoursesByStudent(ctx context.Context, studentID int64) ([]*CourseWithStats, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.thumbnail", "c.category_id", "cat.name AS category_name",
	).
		From("course_students cs").
		Join("courses c ON c.id = cs.course_id").
		Join("categories cat ON cat.id = c.category_id").
		Where("cs.student_id = ?", studentID).
		OrderBy("cs.enrolled_at").
		PlaceholderFormat(squirrel.Dollar)

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
			&course.CategoryID,
			&course.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

// CountByManager sums roster sizes across all courses owned by a manager.
// A student enrolled in two of the manager's courses counts twice.
func (r *EnrollmentRepository) CountByManager(ctx context.Context, managerID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("course_students cs").
		Join("courses c ON c.id = cs.course_id").
		Where("c.manager_id = ?", managerID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}
