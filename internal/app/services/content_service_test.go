package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

type fakeContentStore struct {
	byID   map[int64]*models.CourseContent
	nextID int64
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{byID: make(map[int64]*models.CourseContent)}
}

func (f *fakeContentStore) Create(_ context.Context, content *models.CourseContent) error {
	f.nextID++
	content.ID = f.nextID
	f.byID[content.ID] = content
	return nil
}

func (f *fakeContentStore) GetByID(_ context.Context, id int64) (*models.CourseContent, error) {
	content, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return content, nil
}

func (f *fakeContentStore) Update(_ context.Context, content *models.CourseContent) error {
	if _, ok := f.byID[content.ID]; !ok {
		return apperrors.ErrContentNotFound
	}
	f.byID[content.ID] = content
	return nil
}

func (f *fakeContentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(f.byID, id)
	return nil
}

func newContentFixture() (*ContentService, *fakeContentStore) {
	store := newFakeContentStore()
	courses := &fakeCourseLookup{courses: map[int64]*models.Course{
		10: {ID: 10, Name: "Go Basics"},
	}}
	return NewContentService(store, courses, testLogger()), store
}

func TestCreateVideoContent(t *testing.T) {
	svc, _ := newContentFixture()

	content, err := svc.CreateContent(context.Background(), &dto.MutateContentRequest{
		CourseID:  10,
		Title:     "Intro",
		Type:      "video",
		YoutubeID: "abc123",
		Text:      "ignored for videos",
	})
	if err != nil {
		t.Fatalf("CreateContent: %v", err)
	}

	if content.YoutubeID == nil || *content.YoutubeID != "abc123" {
		t.Errorf("youtubeID = %v, want abc123", content.YoutubeID)
	}
	if content.Body != nil {
		t.Error("video content must not carry a text body")
	}
}

func TestCreateContentUnknownCourse(t *testing.T) {
	svc, _ := newContentFixture()

	_, err := svc.CreateContent(context.Background(), &dto.MutateContentRequest{
		CourseID: 99,
		Title:    "Intro",
		Type:     "video",
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("CreateContent error = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdateContentSwitchesType(t *testing.T) {
	svc, store := newContentFixture()
	youtubeID := "abc123"
	store.byID[1] = &models.CourseContent{ID: 1, CourseID: 10, Title: "Intro", Type: models.ContentTypeVideo, YoutubeID: &youtubeID}
	store.nextID = 1

	updated, err := svc.UpdateContent(context.Background(), 1, &dto.MutateContentRequest{
		CourseID: 10,
		Title:    "Intro notes",
		Type:     "text",
		Text:     "Welcome to the course.",
	})
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}

	if updated.Type != models.ContentTypeText {
		t.Errorf("type = %s, want text", updated.Type)
	}
	if updated.YoutubeID != nil {
		t.Error("expected video id to be cleared after switching to text")
	}
	if updated.Body == nil || *updated.Body != "Welcome to the course." {
		t.Errorf("body = %v", updated.Body)
	}
}

func TestDeleteContent(t *testing.T) {
	svc, store := newContentFixture()
	store.byID[1] = &models.CourseContent{ID: 1, CourseID: 10, Title: "Intro", Type: models.ContentTypeVideo}

	if err := svc.DeleteContent(context.Background(), 1); err != nil {
		t.Fatalf("DeleteContent: %v", err)
	}
	if len(store.byID) != 0 {
		t.Error("expected content row to be removed")
	}

	if err := svc.DeleteContent(context.Background(), 1); !errors.Is(err, apperrors.ErrContentNotFound) {
		t.Fatalf("second DeleteContent error = %v, want ErrContentNotFound", err)
	}
}
