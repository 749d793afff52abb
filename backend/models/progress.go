package models

import "time"

type Enrollment struct {
	ID                 int       `json:"id"`
	StudentID          int       `json:"student_id"`
	CourseID           int       `json:"course_id"`
	EnrolledDate       time.Time `json:"enrolled_date"`
	ProgressPercentage float64   `json:"progress_percentage"`
	Completed          bool      `json:"completed"`
}

// ProgressRecord is append-only. CompletionDate is set only for completed records.
type ProgressRecord struct {
	ID             int        `json:"id"`
	StudentID      int        `json:"student_id"`
	CourseID       int        `json:"course_id"`
	ModuleID       int        `json:"module_id"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date"`
	TimeSpent      float64    `json:"time_spent"`
}

type ProgressInput struct {
	StudentID int     `json:"student_id"`
	CourseID  int     `json:"course_id"`
	ModuleID  int     `json:"module_id"`
	Completed bool    `json:"completed"`
	TimeSpent float64 `json:"time_spent"`
}

type EnrollInput struct {
	StudentID int `json:"student_id"`
	CourseID  int `json:"course_id"`
}

// EnrolledCourse is a catalog course annotated with one student's progress.
type EnrolledCourse struct {
	Course
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

type DashboardStatistics struct {
	TotalCourses      int     `json:"total_courses"`
	CompletedCourses  int     `json:"completed_courses"`
	InProgressCourses int     `json:"in_progress_courses"`
	AverageProgress   float64 `json:"average_progress"`
}

type Dashboard struct {
	EnrolledCourses []EnrolledCourse    `json:"enrolled_courses"`
	Statistics      DashboardStatistics `json:"statistics"`
	RecentActivity  []ProgressRecord    `json:"recent_activity"`
}
