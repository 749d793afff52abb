package models

import "time"

// Student counters are seeded and not recomputed from progress.
type Student struct {
	ID               int       `json:"id" validate:"required,gt=0"`
	Name             string    `json:"name" validate:"required"`
	Email            string    `json:"email" validate:"required,email"`
	JoinedDate       time.Time `json:"joined_date"`
	CoursesCompleted int       `json:"courses_completed" validate:"gte=0"`
	TotalHours       float64   `json:"total_hours" validate:"gte=0"`
}
