package dto

// MutateStudentRequest is the multipart form payload for creating or
// updating a student. Password is optional on update.
type MutateStudentRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password"`
}

// StudentResponse is the projection of a student record
type StudentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}
