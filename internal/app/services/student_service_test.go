package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/auth"
)

type fakeStudentStore struct {
	byID   map[int64]*models.User
	nextID int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byID: make(map[int64]*models.User)}
}

func (f *fakeStudentStore) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = user
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStudentStore) GetStudentsByManager(_ context.Context, managerID int64, _ int) ([]*models.User, error) {
	var out []*models.User
	for _, user := range f.byID {
		if user.ManagerID != nil && *user.ManagerID == managerID {
			out = append(out, user)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

func newStudentFixture() (*StudentService, *fakeStudentStore, *fakeStorage) {
	store := newFakeStudentStore()
	storage := &fakeStorage{}
	return NewStudentService(store, storage, testLogger()), store, storage
}

func TestCreateStudentHashesPasswordAndSetsOwner(t *testing.T) {
	svc, store, _ := newStudentFixture()

	student, err := svc.CreateStudent(context.Background(), 7, &dto.MutateStudentRequest{
		Name:     "Bob",
		Email:    "bob@test.dev",
		Password: "supersecret",
	}, nil)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	if student.Role != models.RoleStudent {
		t.Errorf("role = %s, want student", student.Role)
	}
	if student.ManagerID == nil || *student.ManagerID != 7 {
		t.Errorf("managerID = %v, want 7", student.ManagerID)
	}
	if !auth.CheckPassword(student.Password, "supersecret") {
		t.Error("stored password does not verify")
	}
	if _, ok := store.byID[student.ID]; !ok {
		t.Error("student not persisted")
	}
}

func TestCreateStudentRequiresPassword(t *testing.T) {
	svc, _, _ := newStudentFixture()

	_, err := svc.CreateStudent(context.Background(), 7, &dto.MutateStudentRequest{
		Name:  "Bob",
		Email: "bob@test.dev",
	}, nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("CreateStudent error = %v, want ErrValidationFailed", err)
	}
}

func TestUpdateStudentKeepsPasswordWhenOmitted(t *testing.T) {
	svc, store, _ := newStudentFixture()
	hashed, _ := auth.HashPassword("original")
	store.byID[1] = &models.User{ID: 1, Name: "Bob", Email: "bob@test.dev", Password: hashed, Role: models.RoleStudent}
	store.nextID = 1

	updated, err := svc.UpdateStudent(context.Background(), 1, &dto.MutateStudentRequest{
		Name:  "Robert",
		Email: "robert@test.dev",
	}, nil)
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	if updated.Name != "Robert" || updated.Email != "robert@test.dev" {
		t.Errorf("fields not updated: %+v", updated)
	}
	if !auth.CheckPassword(updated.Password, "original") {
		t.Error("password changed despite being omitted")
	}
}

func TestUpdateStudentReplacesPhoto(t *testing.T) {
	svc, store, storage := newStudentFixture()
	oldPhoto := "photo-old.png"
	store.byID[1] = &models.User{ID: 1, Name: "Bob", Email: "bob@test.dev", Photo: &oldPhoto, Role: models.RoleStudent}

	updated, err := svc.UpdateStudent(context.Background(), 1, &dto.MutateStudentRequest{
		Name:  "Bob",
		Email: "bob@test.dev",
	}, &multipart.FileHeader{Filename: "new.png"})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	if len(storage.deleted) != 1 || storage.deleted[0] != "students/photo-old.png" {
		t.Errorf("deleted assets = %v, want the old photo", storage.deleted)
	}
	if updated.Photo == nil || *updated.Photo == oldPhoto {
		t.Error("expected photo to be replaced")
	}
}

func TestDeleteStudentRemovesPhoto(t *testing.T) {
	svc, store, storage := newStudentFixture()
	photo := "photo-1.png"
	store.byID[1] = &models.User{ID: 1, Name: "Bob", Photo: &photo, Role: models.RoleStudent}

	if err := svc.DeleteStudent(context.Background(), 1); err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "students/photo-1.png" {
		t.Errorf("deleted assets = %v", storage.deleted)
	}
	if len(store.byID) != 0 {
		t.Error("expected student row to be removed")
	}
}

func TestStudentLookupRejectsManagers(t *testing.T) {
	svc, store, _ := newStudentFixture()
	store.byID[1] = &models.User{ID: 1, Name: "Alice", Role: models.RoleManager}

	_, err := svc.GetStudent(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("GetStudent error = %v, want ErrStudentNotFound", err)
	}
}
