package dto

// MutateCourseRequest is the multipart form payload for creating or
// updating a course. The thumbnail file travels separately.
type MutateCourseRequest struct {
	Name        string `form:"name" binding:"required"`
	CategoryID  int64  `form:"categoryId" binding:"required"`
	Description string `form:"description" binding:"required"`
	Tagline     string `form:"tagline" binding:"required"`
}

// CourseResponse is the list projection of a course
type CourseResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	ThumbnailURL  string `json:"thumbnail_url"`
	TotalStudents int    `json:"total_students"`
}

// CourseDetailResponse is the full projection of a course
type CourseDetailResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	Tagline      string            `json:"tagline"`
	ThumbnailURL string            `json:"thumbnail_url"`
	Contents     []ContentResponse `json:"details"`
}

// MutateContentRequest is the payload for creating or updating a content item
type MutateContentRequest struct {
	CourseID  int64  `json:"courseId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=video text"`
	YoutubeID string `json:"youtubeId"`
	Text      string `json:"text"`
}

// ContentResponse is the projection of a content item. YoutubeID and Text
// are only populated for preview requests or single-content reads.
type ContentResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	YoutubeID *string `json:"youtubeId,omitempty"`
	Text      *string `json:"text,omitempty"`
}

// CourseRosterResponse lists the students enrolled in a course
type CourseRosterResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Students []StudentResponse `json:"students"`
}

// EnrollStudentRequest identifies the student to add to or remove from a course
type EnrollStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
}

// StudentCourseResponse is a course as seen from a student's course list
type StudentCourseResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// CategoryResponse is a category together with the ids of its courses
type CategoryResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Courses []int64 `json:"courses"`
}
