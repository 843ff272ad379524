package models

import "time"

// CourseContent is a titled unit (video or text) belonging to a course.
// There is intentionally no FK behind CourseID; see migrations/001_init.sql.
type CourseContent struct {
	ID        int64       `json:"id" db:"id"`
	CourseID  int64       `json:"courseId" db:"course_id"`
	Title     string      `json:"title" db:"title"`
	Type      ContentType `json:"type" db:"content_type"`
	YoutubeID *string     `json:"youtubeId,omitempty" db:"youtube_id"`
	Body      *string     `json:"text,omitempty" db:"body"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}
