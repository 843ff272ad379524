package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/auth"
	"github.com/ardiansetya/coursehub/internal/pkg/filestorage"
)

// studentStore is the subset of the user repository used by StudentService
type studentStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetStudentsByManager(ctx context.Context, managerID int64, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student account management by managers
type StudentService struct {
	users   studentStore
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(users studentStore, storage filestorage.FileStorage, logger zerolog.Logger) *StudentService {
	return &StudentService{users: users, storage: storage, logger: logger}
}

// GetStudents lists the students owned by a manager
func (s *StudentService) GetStudents(ctx context.Context, managerID int64) ([]dto.StudentResponse, error) {
	students, err := s.users.GetStudentsByManager(ctx, managerID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		resp := dto.StudentResponse{
			ID:   student.ID,
			Name: student.Name,
		}
		if student.Photo != nil {
			resp.PhotoURL = s.storage.URLFor(studentAssetDir, *student.Photo)
		}
		out = append(out, resp)
	}

	return out, nil
}

// GetStudent returns a single student's editable fields
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.getStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.StudentResponse{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
	}, nil
}

// CreateStudent registers a student account owned by the given manager
func (s *StudentService) CreateStudent(ctx context.Context, managerID int64, req *dto.MutateStudentRequest, photo *multipart.FileHeader) (*models.User, error) {
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	assetName, err := s.savePhoto(photo)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.discardPhoto(assetName)
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      models.RoleStudent,
		ManagerID: &managerID,
	}
	if assetName != "" {
		student.Photo = &assetName
	}

	if err := s.users.Create(ctx, student); err != nil {
		s.discardPhoto(assetName)
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Int64("managerId", managerID).
		Msg("Student created")

	return student, nil
}

// UpdateStudent applies field changes to a student. The password is re-hashed
// only when a new one is supplied, and a new photo replaces the old asset.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.MutateStudentRequest, photo *multipart.FileHeader) (*models.User, error) {
	student, err := s.getStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	assetName, err := s.savePhoto(photo)
	if err != nil {
		return nil, err
	}
	if assetName != "" {
		if student.Photo != nil {
			s.discardPhoto(*student.Photo)
		}
		student.Photo = &assetName
	}

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hashed
	}

	student.Name = req.Name
	student.Email = req.Email

	if err := s.users.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student account together with its photo asset.
// Roster rows referencing the student are removed by the database.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.getStudent(ctx, id)
	if err != nil {
		return err
	}

	if student.Photo != nil {
		s.discardPhoto(*student.Photo)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// getStudent resolves an id that must refer to a student account
func (s *StudentService) getStudent(ctx context.Context, id int64) (*models.User, error) {
	student, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *StudentService) savePhoto(photo *multipart.FileHeader) (string, error) {
	if photo == nil {
		return "", nil
	}
	name, err := s.storage.SaveUpload(photo, "photo", studentAssetDir)
	if err != nil {
		return "", fmt.Errorf("error storing photo: %w", err)
	}
	return name, nil
}

func (s *StudentService) discardPhoto(name string) {
	if name == "" {
		return
	}
	if err := s.storage.DeleteFile(studentAssetDir, name); err != nil {
		s.logger.Warn().Err(err).Str("asset", name).Msg("Failed to remove stored asset")
	}
}
