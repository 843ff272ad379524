package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/filestorage"
)

const overviewRecentLimit = 10

// overviewCourseStore is the subset of the course repository used by OverviewService
type overviewCourseStore interface {
	CountByManager(ctx context.Context, managerID int64) (int, error)
	GetByManager(ctx context.Context, managerID int64, limit uint64) ([]*repositories.CourseWithStats, error)
}

// overviewContentStore is the subset of the content repository used by OverviewService
type overviewContentStore interface {
	CountByManagerAndType(ctx context.Context, managerID int64, contentType models.ContentType) (int, error)
}

// overviewEnrollmentStore is the subset of the enrollment repository used by OverviewService
type overviewEnrollmentStore interface {
	CountByManager(ctx context.Context, managerID int64) (int, error)
}

// overviewStudentStore is the subset of the user repository used by OverviewService
type overviewStudentStore interface {
	GetStudentsByManager(ctx context.Context, managerID int64, limit int) ([]*models.User, error)
}

// OverviewService assembles the manager dashboard read model
type OverviewService struct {
	courses     overviewCourseStore
	contents    overviewContentStore
	enrollments overviewEnrollmentStore
	students    overviewStudentStore
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(
	courses overviewCourseStore,
	contents overviewContentStore,
	enrollments overviewEnrollmentStore,
	students overviewStudentStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *OverviewService {
	return &OverviewService{
		courses:     courses,
		contents:    contents,
		enrollments: enrollments,
		students:    students,
		storage:     storage,
		logger:      logger,
	}
}

// GetOverview returns dashboard totals and recent records scoped to a
// manager. The student total sums roster sizes, so a student enrolled in two
// of the manager's courses counts twice.
func (s *OverviewService) GetOverview(ctx context.Context, managerID int64) (*dto.OverviewResponse, error) {
	totalCourses, err := s.courses.CountByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	totalStudents, err := s.enrollments.CountByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	totalVideos, err := s.contents.CountByManagerAndType(ctx, managerID, models.ContentTypeVideo)
	if err != nil {
		return nil, err
	}

	totalText, err := s.contents.CountByManagerAndType(ctx, managerID, models.ContentTypeText)
	if err != nil {
		return nil, err
	}

	recentCourses, err := s.courses.GetByManager(ctx, managerID, overviewRecentLimit)
	if err != nil {
		return nil, err
	}

	recentStudents, err := s.students.GetStudentsByManager(ctx, managerID, overviewRecentLimit)
	if err != nil {
		return nil, err
	}

	overview := &dto.OverviewResponse{
		TotalCourses:  totalCourses,
		TotalStudents: totalStudents,
		TotalVideos:   totalVideos,
		TotalText:     totalText,
		Courses:       make([]dto.CourseResponse, 0, len(recentCourses)),
		Students:      make([]dto.StudentResponse, 0, len(recentStudents)),
	}

	for _, course := range recentCourses {
		resp := dto.CourseResponse{
			ID:            course.ID,
			Name:          course.Name,
			Category:      course.CategoryName,
			TotalStudents: course.StudentCount,
		}
		if course.Thumbnail != nil {
			resp.ThumbnailURL = s.storage.URLFor(courseAssetDir, *course.Thumbnail)
		}
		overview.Courses = append(overview.Courses, resp)
	}

	for _, student := range recentStudents {
		resp := dto.StudentResponse{
			ID:   student.ID,
			Name: student.Name,
		}
		if student.Photo != nil {
			resp.PhotoURL = s.storage.URLFor(studentAssetDir, *student.Photo)
		}
		overview.Students = append(overview.Students, resp)
	}

	return overview, nil
}
