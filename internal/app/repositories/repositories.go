package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CategoryRepository    *CategoryRepository
	CourseRepository      *CourseRepository
	ContentRepository     *ContentRepository
	TransactionRepository *TransactionRepository
	EnrollmentRepository  *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CategoryRepository:    NewCategoryRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ContentRepository:     NewContentRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
	}
}
