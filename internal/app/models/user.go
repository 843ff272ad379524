package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Students carry a reference to the manager that created them.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Photo     *string   `json:"photo,omitempty" db:"photo"`
	Role      RoleType  `json:"role" db:"role"`
	ManagerID *int64    `json:"managerId,omitempty" db:"manager_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
