package store

import (
	"context"
	"errors"
	"sync"

	"elearning/backend/models"
)

var (
	// ErrNotFound is returned when the requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an enrollment for the same student and course already exists
	ErrDuplicate = errors.New("duplicate enrollment")
)

// Store owns the five collections of the platform.
// Implementations return copies; callers may modify results freely.
type Store interface {
	// Catalog data, written once while seeding
	SaveCourse(ctx context.Context, course models.Course) error
	Courses(ctx context.Context) ([]models.Course, error)
	Course(ctx context.Context, id int) (models.Course, error)

	SaveStudent(ctx context.Context, student models.Student) error
	Student(ctx context.Context, id int) (models.Student, error)

	SaveQuiz(ctx context.Context, quiz models.Quiz) error
	Quiz(ctx context.Context, id int) (models.Quiz, error)

	// CreateEnrollment assigns the next enrollment id and stores the enrollment.
	// Returns ErrDuplicate if the (student, course) pair already exists.
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	UpdateEnrollment(ctx context.Context, enrollment models.Enrollment) error
	FindEnrollment(ctx context.Context, studentID, courseID int) (models.Enrollment, error)
	EnrollmentsByStudent(ctx context.Context, studentID int) ([]models.Enrollment, error)
	EnrollmentsByCourse(ctx context.Context, courseID int) ([]models.Enrollment, error)

	// AppendProgress assigns the next progress id and stores the record
	AppendProgress(ctx context.Context, record *models.ProgressRecord) error
	ProgressFor(ctx context.Context, studentID, courseID int) ([]models.ProgressRecord, error)
	ProgressByStudent(ctx context.Context, studentID int) ([]models.ProgressRecord, error)
	ProgressByCourse(ctx context.Context, courseID int) ([]models.ProgressRecord, error)
}

// Id kinds handed out by an IDGenerator
const (
	KindEnrollment = "enrollment"
	KindProgress   = "progress"
)

// IDGenerator hands out process-lifetime ids per entity kind
type IDGenerator interface {
	NextID(kind string) int
}

// Sequence is an IDGenerator with one counter per kind, starting at 1
type Sequence struct {
	mu   sync.Mutex
	last map[string]int
}

func NewSequence() *Sequence {
	return &Sequence{last: make(map[string]int)}
}

func (s *Sequence) NextID(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[kind]++
	return s.last[kind]
}
