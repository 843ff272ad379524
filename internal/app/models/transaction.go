package models

import "time"

// Transaction is a payment record tracked through pending/success/failed.
// Its UUID primary key doubles as the gateway order id.
type Transaction struct {
	ID        string            `json:"id" db:"id"`
	UserID    int64             `json:"userId" db:"user_id"`
	Price     int64             `json:"price" db:"price"`
	Status    TransactionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}

// Enrollment links a student to a course
type Enrollment struct {
	CourseID   int64     `json:"courseId" db:"course_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}
