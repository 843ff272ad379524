package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/filestorage"
)

// enrollmentStore is the subset of the enrollment repository used by EnrollmentService
type enrollmentStore interface {
	IsEnrolled(ctx context.Context, courseID, studentID int64) (bool, error)
	Enroll(ctx context.Context, courseID, studentID int64) error
	Unenroll(ctx context.Context, courseID, studentID int64) error
	GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.User, error)
	GetCoursesByStudent(ctx context.Context, studentID int64) ([]*repositories.CourseWithStats, error)
}

// enrollmentCourseStore is the subset of the course repository used by EnrollmentService
type enrollmentCourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// enrollmentUserStore is the subset of the user repository used by EnrollmentService
type enrollmentUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// EnrollmentService manages course rosters
type EnrollmentService struct {
	enrollments enrollmentStore
	courses     enrollmentCourseStore
	users       enrollmentUserStore
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollments enrollmentStore,
	courses enrollmentCourseStore,
	users enrollmentUserStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
		storage:     storage,
		logger:      logger,
	}
}

// lookupStudent resolves a user id that must refer to a student account
func (s *EnrollmentService) lookupStudent(ctx context.Context, studentID int64) (*models.User, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.NewValidationError("user is not a student")
	}
	return student, nil
}

// Enroll adds a student to a course roster. Enrolling an already enrolled
// student is a conflict and leaves the roster unchanged.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.lookupStudent(ctx, studentID); err != nil {
		return err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, courseID, studentID)
	if err != nil {
		return fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrolled {
		return apperrors.ErrAlreadyEnrolled
	}

	if err := s.enrollments.Enroll(ctx, courseID, studentID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("courseId", courseID).
		Int64("studentId", studentID).
		Msg("Student enrolled")

	return nil
}

// Unenroll removes a student from a course roster. Removing a link that does
// not exist succeeds silently.
func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.lookupStudent(ctx, studentID); err != nil {
		return err
	}

	if err := s.enrollments.Unenroll(ctx, courseID, studentID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("courseId", courseID).
		Int64("studentId", studentID).
		Msg("Student unenrolled")

	return nil
}

// GetCourseRoster returns a course together with its enrolled students
func (s *EnrollmentService) GetCourseRoster(ctx context.Context, courseID int64) (*dto.CourseRosterResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	students, err := s.enrollments.GetStudentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	roster := &dto.CourseRosterResponse{
		ID:       course.ID,
		Name:     course.Name,
		Students: make([]dto.StudentResponse, 0, len(students)),
	}
	for _, student := range students {
		roster.Students = append(roster.Students, dto.StudentResponse{
			ID:       student.ID,
			Name:     student.Name,
			PhotoURL: s.photoURL(student.Photo),
		})
	}

	return roster, nil
}

// GetStudentCourses returns the courses a student is enrolled in
func (s *EnrollmentService) GetStudentCourses(ctx context.Context, studentID int64) ([]dto.StudentCourseResponse, error) {
	if _, err := s.lookupStudent(ctx, studentID); err != nil {
		return nil, err
	}

	courses, err := s.enrollments.GetCoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentCourseResponse, 0, len(courses))
	for _, course := range courses {
		resp := dto.StudentCourseResponse{
			ID:       course.ID,
			Name:     course.Name,
			Category: course.CategoryName,
		}
		if course.Thumbnail != nil {
			resp.ThumbnailURL = s.storage.URLFor(courseAssetDir, *course.Thumbnail)
		}
		out = append(out, resp)
	}

	return out, nil
}

func (s *EnrollmentService) photoURL(photo *string) string {
	if photo == nil {
		return ""
	}
	return s.storage.URLFor(studentAssetDir, *photo)
}
