package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
)

// contentStore is the subset of the content repository used by ContentService
type contentStore interface {
	Create(ctx context.Context, content *models.CourseContent) error
	GetByID(ctx context.Context, id int64) (*models.CourseContent, error)
	Update(ctx context.Context, content *models.CourseContent) error
	Delete(ctx context.Context, id int64) error
}

// contentCourseStore is the subset of the course repository used by ContentService
type contentCourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// ContentService handles course content items
type ContentService struct {
	contents contentStore
	courses  contentCourseStore
	logger   zerolog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(contents contentStore, courses contentCourseStore, logger zerolog.Logger) *ContentService {
	return &ContentService{contents: contents, courses: courses, logger: logger}
}

// CreateContent adds a content item to an existing course
func (s *ContentService) CreateContent(ctx context.Context, req *dto.MutateContentRequest) (*models.CourseContent, error) {
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	content := &models.CourseContent{
		CourseID: req.CourseID,
		Title:    req.Title,
		Type:     models.ContentType(req.Type),
	}
	applyContentBody(content, req)

	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("contentId", content.ID).
		Int64("courseId", content.CourseID).
		Str("type", req.Type).
		Msg("Content created")

	return content, nil
}

// GetContent returns a single content item with its video id or text body
func (s *ContentService) GetContent(ctx context.Context, id int64) (*dto.ContentResponse, error) {
	content, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ContentResponse{
		ID:        content.ID,
		Title:     content.Title,
		Type:      string(content.Type),
		YoutubeID: content.YoutubeID,
		Text:      content.Body,
	}, nil
}

// UpdateContent replaces the fields of an existing content item
func (s *ContentService) UpdateContent(ctx context.Context, id int64, req *dto.MutateContentRequest) (*models.CourseContent, error) {
	content, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	content.CourseID = req.CourseID
	content.Title = req.Title
	content.Type = models.ContentType(req.Type)
	content.YoutubeID = nil
	content.Body = nil
	applyContentBody(content, req)

	if err := s.contents.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// DeleteContent removes a content item
func (s *ContentService) DeleteContent(ctx context.Context, id int64) error {
	if _, err := s.contents.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.contents.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("contentId", id).Msg("Content deleted")
	return nil
}

// applyContentBody sets the payload column matching the content type
func applyContentBody(content *models.CourseContent, req *dto.MutateContentRequest) {
	switch content.Type {
	case models.ContentTypeVideo:
		youtubeID := req.YoutubeID
		content.YoutubeID = &youtubeID
	case models.ContentTypeText:
		text := req.Text
		content.Body = &text
	}
}
