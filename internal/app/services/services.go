package services

// Asset subdirectories under the upload root. Course thumbnails and student
// photos live in separate directories so their names cannot collide.
const (
	courseAssetDir  = "courses"
	studentAssetDir = "students"
)

// Services defined in this package:
// - AuthService: sign-up with payment reservation, sign-in with token issue
// - PaymentService: gateway callback handling
// - CourseService: course and category operations
// - ContentService: course content items
// - StudentService: student account management
// - EnrollmentService: course rosters
// - OverviewService: manager dashboard read model
