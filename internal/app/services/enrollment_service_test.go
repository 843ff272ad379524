package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/repositories"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

type pair struct{ courseID, studentID int64 }

type fakeEnrollments struct {
	links map[pair]bool
}

func newFakeEnrollments() *fakeEnrollments {
	return &fakeEnrollments{links: make(map[pair]bool)}
}

func (f *fakeEnrollments) IsEnrolled(_ context.Context, courseID, studentID int64) (bool, error) {
	return f.links[pair{courseID, studentID}], nil
}

func (f *fakeEnrollments) Enroll(_ context.Context, courseID, studentID int64) error {
	key := pair{courseID, studentID}
	if f.links[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	f.links[key] = true
	return nil
}

func (f *fakeEnrollments) Unenroll(_ context.Context, courseID, studentID int64) error {
	delete(f.links, pair{courseID, studentID})
	return nil
}

func (f *fakeEnrollments) GetStudentsByCourse(_ context.Context, courseID int64) ([]*models.User, error) {
	return nil, nil
}

func (f *fakeEnrollments) GetCoursesByStudent(_ context.Context, studentID int64) ([]*repositories.CourseWithStats, error) {
	return nil, nil
}

type fakeCourseLookup struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseLookup) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

type fakeUserLookup struct {
	users map[int64]*models.User
}

func (f *fakeUserLookup) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newEnrollmentFixture() (*EnrollmentService, *fakeEnrollments) {
	enrollments := newFakeEnrollments()
	courses := &fakeCourseLookup{courses: map[int64]*models.Course{
		10: {ID: 10, Name: "Go Basics"},
	}}
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Name: "Student", Role: models.RoleStudent},
		2: {ID: 2, Name: "Manager", Role: models.RoleManager},
	}}
	svc := NewEnrollmentService(enrollments, courses, users, &fakeStorage{}, testLogger())
	return svc, enrollments
}

func TestEnrollUnenrollRoundTrip(t *testing.T) {
	svc, enrollments := newEnrollmentFixture()
	ctx := context.Background()

	if err := svc.Enroll(ctx, 10, 1); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if !enrollments.links[pair{10, 1}] {
		t.Fatal("expected enrollment link to exist")
	}

	if err := svc.Unenroll(ctx, 10, 1); err != nil {
		t.Fatalf("Unenroll: %v", err)
	}
	if len(enrollments.links) != 0 {
		t.Fatalf("expected clean state, got %d links", len(enrollments.links))
	}
}

func TestEnrollTwiceConflicts(t *testing.T) {
	svc, enrollments := newEnrollmentFixture()
	ctx := context.Background()

	if err := svc.Enroll(ctx, 10, 1); err != nil {
		t.Fatalf("first Enroll: %v", err)
	}

	err := svc.Enroll(ctx, 10, 1)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("second Enroll error = %v, want ErrAlreadyEnrolled", err)
	}
	if len(enrollments.links) != 1 {
		t.Errorf("expected state unchanged, got %d links", len(enrollments.links))
	}
}

func TestUnenrollMissingLinkIsNoOp(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	if err := svc.Unenroll(context.Background(), 10, 1); err != nil {
		t.Fatalf("Unenroll of missing link: %v", err)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	err := svc.Enroll(context.Background(), 99, 1)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("Enroll error = %v, want ErrCourseNotFound", err)
	}
}

func TestEnrollUnknownStudent(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	err := svc.Enroll(context.Background(), 10, 99)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("Enroll error = %v, want ErrStudentNotFound", err)
	}
}

func TestEnrollManagerRejected(t *testing.T) {
	svc, enrollments := newEnrollmentFixture()

	err := svc.Enroll(context.Background(), 10, 2)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Enroll error = %v, want ErrValidationFailed", err)
	}
	if len(enrollments.links) != 0 {
		t.Error("expected no enrollment for a manager account")
	}
}
