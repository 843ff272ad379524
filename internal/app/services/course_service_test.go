package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

type fakeCourses struct {
	byID   map[int64]*models.Course
	nextID int64
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{byID: make(map[int64]*models.Course)}
}

func (f *fakeCourses) Create(_ context.Context, course *models.Course) error {
	f.nextID++
	course.ID = f.nextID
	f.byID[course.ID] = course
	return nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourses) GetByManager(_ context.Context, managerID int64, _ uint64) ([]*repositories.CourseWithStats, error) {
	var out []*repositories.CourseWithStats
	for _, course := range f.byID {
		if course.ManagerID == managerID {
			out = append(out, &repositories.CourseWithStats{Course: *course})
		}
	}
	return out, nil
}

func (f *fakeCourses) GetWithStatsByID(ctx context.Context, id int64) (*repositories.CourseWithStats, error) {
	course, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &repositories.CourseWithStats{Course: *course}, nil
}

func (f *fakeCourses) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.byID[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.byID[course.ID] = course
	return nil
}

func (f *fakeCourses) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCategories resolves course memberships from the course store so the
// category listing reflects created courses.
type fakeCategories struct {
	byID    map[int64]*models.Category
	courses *fakeCourses
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*models.Category, error) {
	category, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategories) GetAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, category := range f.byID {
		out = append(out, category)
	}
	return out, nil
}

func (f *fakeCategories) GetCourseIDs(_ context.Context, categoryID int64) ([]int64, error) {
	var ids []int64
	for _, course := range f.courses.byID {
		if course.CategoryID == categoryID {
			ids = append(ids, course.ID)
		}
	}
	return ids, nil
}

type fakeContents struct {
	byCourse map[int64][]*models.CourseContent
}

func (f *fakeContents) GetByCourse(_ context.Context, courseID int64) ([]*models.CourseContent, error) {
	return f.byCourse[courseID], nil
}

func newCourseFixture() (*CourseService, *fakeCourses, *fakeCategories, *fakeStorage) {
	courses := newFakeCourses()
	categories := &fakeCategories{
		byID:    map[int64]*models.Category{1: {ID: 1, Name: "Backend Development"}},
		courses: courses,
	}
	contents := &fakeContents{byCourse: make(map[int64][]*models.CourseContent)}
	storage := &fakeStorage{}
	svc := NewCourseService(courses, categories, contents, storage, testLogger())
	return svc, courses, categories, storage
}

func TestDeleteCourseRemovesThumbnail(t *testing.T) {
	svc, courses, _, storage := newCourseFixture()
	thumbnail := "thumbnail-1.png"
	courses.byID[1] = &models.Course{ID: 1, Name: "Go Basics", Thumbnail: &thumbnail, CategoryID: 1}

	if err := svc.DeleteCourse(context.Background(), 1); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}

	if len(storage.deleted) != 1 || storage.deleted[0] != "courses/thumbnail-1.png" {
		t.Errorf("deleted assets = %v, want [courses/thumbnail-1.png]", storage.deleted)
	}
	if len(courses.byID) != 0 {
		t.Error("expected course row to be removed")
	}
}

func TestDeleteCourseWithoutThumbnail(t *testing.T) {
	svc, courses, _, storage := newCourseFixture()
	courses.byID[1] = &models.Course{ID: 1, Name: "Go Basics", CategoryID: 1}

	if err := svc.DeleteCourse(context.Background(), 1); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if len(storage.deleted) != 0 {
		t.Errorf("expected no asset deletions, got %v", storage.deleted)
	}
}

func TestDeleteCourseUnknown(t *testing.T) {
	svc, _, _, _ := newCourseFixture()

	err := svc.DeleteCourse(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("DeleteCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestCreateCourseAppearsInCategory(t *testing.T) {
	svc, _, _, _ := newCourseFixture()

	course, err := svc.CreateCourse(context.Background(), 7, &dto.MutateCourseRequest{
		Name:        "Go Basics",
		CategoryID:  1,
		Description: "An introduction",
		Tagline:     "Learn Go",
	}, nil)
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	categories, err := svc.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if len(categories[0].Courses) != 1 || categories[0].Courses[0] != course.ID {
		t.Errorf("category courses = %v, want [%d]", categories[0].Courses, course.ID)
	}
}

func TestCreateCourseUnknownCategoryDiscardsThumbnail(t *testing.T) {
	svc, _, _, storage := newCourseFixture()

	_, err := svc.CreateCourse(context.Background(), 7, &dto.MutateCourseRequest{
		Name:        "Go Basics",
		CategoryID:  99,
		Description: "An introduction",
		Tagline:     "Learn Go",
	}, &multipart.FileHeader{Filename: "cover.png"})
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Fatalf("CreateCourse error = %v, want ErrCategoryNotFound", err)
	}

	if len(storage.saved) != 1 {
		t.Fatalf("expected 1 saved asset, got %d", len(storage.saved))
	}
	if len(storage.deleted) != 1 {
		t.Fatalf("expected rejected thumbnail to be discarded, deleted = %v", storage.deleted)
	}
}

func TestGetCategoriesEmpty(t *testing.T) {
	courses := newFakeCourses()
	categories := &fakeCategories{byID: map[int64]*models.Category{}, courses: courses}
	contents := &fakeContents{byCourse: make(map[int64][]*models.CourseContent)}
	svc := NewCourseService(courses, categories, contents, &fakeStorage{}, testLogger())

	_, err := svc.GetCategories(context.Background())
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Fatalf("GetCategories error = %v, want ErrCategoryNotFound", err)
	}
}

func TestGetCourseByIDPreviewControlsContentPayload(t *testing.T) {
	svc, courses, _, _ := newCourseFixture()
	courses.byID[1] = &models.Course{ID: 1, Name: "Go Basics", CategoryID: 1}

	youtubeID := "abc123"
	body := "Welcome to the course."
	contents := svc.contents.(*fakeContents)
	contents.byCourse[1] = []*models.CourseContent{
		{ID: 1, CourseID: 1, Title: "Intro", Type: models.ContentTypeVideo, YoutubeID: &youtubeID},
		{ID: 2, CourseID: 1, Title: "Notes", Type: models.ContentTypeText, Body: &body},
	}

	listing, err := svc.GetCourseByID(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("GetCourseByID: %v", err)
	}
	for _, item := range listing.Contents {
		if item.YoutubeID != nil || item.Text != nil {
			t.Errorf("content %d leaked payload without preview", item.ID)
		}
	}

	previewed, err := svc.GetCourseByID(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("GetCourseByID preview: %v", err)
	}
	if previewed.Contents[0].YoutubeID == nil || *previewed.Contents[0].YoutubeID != youtubeID {
		t.Error("expected video id in preview listing")
	}
	if previewed.Contents[1].Text == nil || *previewed.Contents[1].Text != body {
		t.Error("expected text body in preview listing")
	}
}
