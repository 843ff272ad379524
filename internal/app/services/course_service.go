package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/filestorage"
)

// courseStore is the subset of the course repository used by CourseService
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByManager(ctx context.Context, managerID int64, limit uint64) ([]*repositories.CourseWithStats, error)
	GetWithStatsByID(ctx context.Context, id int64) (*repositories.CourseWithStats, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// categoryStore is the subset of the category repository used by CourseService
type categoryStore interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetCourseIDs(ctx context.Context, categoryID int64) ([]int64, error)
}

// courseContentStore is the subset of the content repository used by CourseService
type courseContentStore interface {
	GetByCourse(ctx context.Context, courseID int64) ([]*models.CourseContent, error)
}

// CourseService handles course and category operations
type CourseService struct {
	courses    courseStore
	categories categoryStore
	contents   courseContentStore
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courses courseStore,
	categories categoryStore,
	contents courseContentStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courses:    courses,
		categories: categories,
		contents:   contents,
		storage:    storage,
		logger:     logger,
	}
}

// GetCategories lists all categories with their course ids.
// An empty category table is reported as not found.
func (s *CourseService) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrCategoryNotFound
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		courseIDs, err := s.categories.GetCourseIDs(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CategoryResponse{
			ID:      category.ID,
			Name:    category.Name,
			Courses: courseIDs,
		})
	}

	return out, nil
}

// CreateCourse stores the thumbnail, validates the category and persists the
// course. When the category check fails the already-stored thumbnail is
// removed so rejected requests leave no stray assets behind.
func (s *CourseService) CreateCourse(ctx context.Context, managerID int64, req *dto.MutateCourseRequest, thumbnail *multipart.FileHeader) (*models.Course, error) {
	assetName, err := s.saveThumbnail(thumbnail)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		s.discardAsset(courseAssetDir, assetName)
		return nil, err
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Tagline:     req.Tagline,
		CategoryID:  req.CategoryID,
		ManagerID:   managerID,
	}
	if assetName != "" {
		course.Thumbnail = &assetName
	}

	if err := s.courses.Create(ctx, course); err != nil {
		s.discardAsset(courseAssetDir, assetName)
		return nil, err
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Int64("managerId", managerID).
		Msg("Course created")

	return course, nil
}

// UpdateCourse applies field changes to an existing course. A newly uploaded
// thumbnail replaces the previous asset on disk.
func (s *CourseService) UpdateCourse(ctx context.Context, id, managerID int64, req *dto.MutateCourseRequest, thumbnail *multipart.FileHeader) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assetName, err := s.saveThumbnail(thumbnail)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		s.discardAsset(courseAssetDir, assetName)
		return nil, err
	}

	if assetName != "" {
		if course.Thumbnail != nil {
			s.discardAsset(courseAssetDir, *course.Thumbnail)
		}
		course.Thumbnail = &assetName
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Tagline = req.Tagline
	course.CategoryID = req.CategoryID
	course.ManagerID = managerID

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and its thumbnail asset. Content rows keep
// their course_id reference and enrollments are cleaned up by the database.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if course.Thumbnail != nil {
		s.discardAsset(courseAssetDir, *course.Thumbnail)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}

// GetCourses lists the courses owned by a manager
func (s *CourseService) GetCourses(ctx context.Context, managerID int64) ([]dto.CourseResponse, error) {
	courses, err := s.courses.GetByManager(ctx, managerID, 0)
	if err != nil {
		return nil, err
	}
	return s.toCourseResponses(courses), nil
}

// GetCourseByID returns a course with its category, thumbnail URL and content
// listing. Video ids and text bodies are included only for preview reads.
func (s *CourseService) GetCourseByID(ctx context.Context, id int64, preview bool) (*dto.CourseDetailResponse, error) {
	course, err := s.courses.GetWithStatsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contents, err := s.contents.GetByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.CourseDetailResponse{
		ID:          course.ID,
		Name:        course.Name,
		Category:    course.CategoryName,
		Description: course.Description,
		Tagline:     course.Tagline,
		Contents:    make([]dto.ContentResponse, 0, len(contents)),
	}
	if course.Thumbnail != nil {
		detail.ThumbnailURL = s.storage.URLFor(courseAssetDir, *course.Thumbnail)
	}

	for _, content := range contents {
		item := dto.ContentResponse{
			ID:    content.ID,
			Title: content.Title,
			Type:  string(content.Type),
		}
		if preview {
			item.YoutubeID = content.YoutubeID
			item.Text = content.Body
		}
		detail.Contents = append(detail.Contents, item)
	}

	return detail, nil
}

func (s *CourseService) toCourseResponses(courses []*repositories.CourseWithStats) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp := dto.CourseResponse{
			ID:            course.ID,
			Name:          course.Name,
			Category:      course.CategoryName,
			TotalStudents: course.StudentCount,
		}
		if course.Thumbnail != nil {
			resp.ThumbnailURL = s.storage.URLFor(courseAssetDir, *course.Thumbnail)
		}
		out = append(out, resp)
	}
	return out
}

func (s *CourseService) saveThumbnail(thumbnail *multipart.FileHeader) (string, error) {
	if thumbnail == nil {
		return "", nil
	}
	name, err := s.storage.SaveUpload(thumbnail, "thumbnail", courseAssetDir)
	if err != nil {
		return "", fmt.Errorf("error storing thumbnail: %w", err)
	}
	return name, nil
}

// discardAsset removes a stored asset, tolerating files that are already gone
func (s *CourseService) discardAsset(subPath, name string) {
	if name == "" {
		return
	}
	if err := s.storage.DeleteFile(subPath, name); err != nil {
		s.logger.Warn().Err(err).Str("asset", name).Msg("Failed to remove stored asset")
	}
}
