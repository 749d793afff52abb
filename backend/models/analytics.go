package models

type CategoryStats struct {
	Name          string  `json:"name"`
	CourseCount   int     `json:"course_count"`
	AvgRating     float64 `json:"avg_rating"`
	TotalStudents int     `json:"total_students"`
}

// CourseAnalytics summarises every enrollment of one course.
type CourseAnalytics struct {
	CourseID         int          `json:"course_id"`
	Title            string       `json:"title"`
	TotalModules     int          `json:"total_modules"`
	Enrollments      int          `json:"enrollments"`
	CompletedCount   int          `json:"completed_count"`
	AvgProgress      float64      `json:"avg_progress"`
	TotalTimeSpent   float64      `json:"total_time_spent"`
	EnrollmentDetail []Enrollment `json:"enrollment_detail"`
}
