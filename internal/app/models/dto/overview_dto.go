package dto

// OverviewResponse is the manager dashboard read model. TotalStudents is a
// sum of per-course roster sizes, so a student enrolled twice counts twice.
type OverviewResponse struct {
	TotalCourses  int               `json:"totalCourses"`
	TotalStudents int               `json:"totalStudents"`
	TotalVideos   int               `json:"totalVideos"`
	TotalText     int               `json:"totalText"`
	Courses       []CourseResponse  `json:"courses"`
	Students      []StudentResponse `json:"students"`
}
