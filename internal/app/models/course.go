package models

import "time"

// Course represents a course owned by a manager
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Thumbnail   *string   `json:"thumbnail,omitempty" db:"thumbnail"`
	Description string    `json:"description" db:"description"`
	Tagline     string    `json:"tagline" db:"tagline"`
	CategoryID  int64     `json:"categoryId" db:"category_id"`
	ManagerID   int64     `json:"managerId" db:"manager_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Category groups courses
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
