package models

import "time"

type Course struct {
	ID            int       `json:"id" validate:"required,gt=0"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Instructor    string    `json:"instructor"`
	Duration      string    `json:"duration"`
	Level         string    `json:"level" validate:"required"` // beginner, intermediate, advanced
	Price         float64   `json:"price" validate:"gte=0"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	StudentsCount int       `json:"students_count" validate:"gte=0"`
	Category      string    `json:"category" validate:"required"`
	Image         string    `json:"image"`
	Modules       []Module  `json:"modules" validate:"dive"`
	CreatedAt     time.Time `json:"created_at"`
}

// Module is part of the course template. Completed is display data only;
// per-student completion lives in ProgressRecord.
type Module struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// CourseFilter narrows the catalog listing. Empty fields match everything.
type CourseFilter struct {
	Category string
	Level    string
	Search   string
}

// Clone returns a copy that does not share the modules slice.
func (c Course) Clone() Course {
	if c.Modules != nil {
		modules := make([]Module, len(c.Modules))
		copy(modules, c.Modules)
		c.Modules = modules
	}
	return c
}
