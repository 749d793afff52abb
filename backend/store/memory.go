package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"elearning/backend/models"
)

// MemoryStore keeps every collection in slices and maps guarded by one RWMutex.
type MemoryStore struct {
	mu  sync.RWMutex
	ids IDGenerator

	courses     map[int]models.Course
	students    map[int]models.Student
	quizzes     map[int]models.Quiz
	enrollments []models.Enrollment
	progress    []models.ProgressRecord
}

// NewMemoryStore creates an empty store. A nil generator means a fresh Sequence.
func NewMemoryStore(ids IDGenerator) *MemoryStore {
	if ids == nil {
		ids = NewSequence()
	}
	return &MemoryStore{
		ids:      ids,
		courses:  make(map[int]models.Course),
		students: make(map[int]models.Student),
		quizzes:  make(map[int]models.Quiz),
	}
}

func (m *MemoryStore) SaveCourse(_ context.Context, course models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.courses[course.ID] = course.Clone()
	return nil
}

// Courses returns the catalog ordered by id
func (m *MemoryStore) Courses(_ context.Context) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	courses := make([]models.Course, 0, len(m.courses))
	for _, course := range m.courses {
		courses = append(courses, course.Clone())
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (m *MemoryStore) Course(_ context.Context, id int) (models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	course, ok := m.courses[id]
	if !ok {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return course.Clone(), nil
}

func (m *MemoryStore) SaveStudent(_ context.Context, student models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.students[student.ID] = student
	return nil
}

func (m *MemoryStore) Student(_ context.Context, id int) (models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	student, ok := m.students[id]
	if !ok {
		return models.Student{}, fmt.Errorf("student %d: %w", id, ErrNotFound)
	}
	return student, nil
}

func (m *MemoryStore) SaveQuiz(_ context.Context, quiz models.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quizzes[quiz.ID] = quiz.Clone()
	return nil
}

func (m *MemoryStore) Quiz(_ context.Context, id int) (models.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quiz, ok := m.quizzes[id]
	if !ok {
		return models.Quiz{}, fmt.Errorf("quiz %d: %w", id, ErrNotFound)
	}
	return quiz.Clone(), nil
}

func (m *MemoryStore) CreateEnrollment(_ context.Context, enrollment *models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findEnrollment(enrollment.StudentID, enrollment.CourseID) >= 0 {
		return fmt.Errorf("student %d course %d: %w", enrollment.StudentID, enrollment.CourseID, ErrDuplicate)
	}

	enrollment.ID = m.ids.NextID(KindEnrollment)
	m.enrollments = append(m.enrollments, *enrollment)
	return nil
}

func (m *MemoryStore) UpdateEnrollment(_ context.Context, enrollment models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.enrollments {
		if m.enrollments[i].ID == enrollment.ID {
			m.enrollments[i] = enrollment
			return nil
		}
	}
	return fmt.Errorf("enrollment %d: %w", enrollment.ID, ErrNotFound)
}

func (m *MemoryStore) FindEnrollment(_ context.Context, studentID, courseID int) (models.Enrollment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.findEnrollment(studentID, courseID)
	if i < 0 {
		return models.Enrollment{}, fmt.Errorf("student %d course %d: %w", studentID, courseID, ErrNotFound)
	}
	return m.enrollments[i], nil
}

// findEnrollment returns the slice index of the pair, or -1. Caller holds the lock.
func (m *MemoryStore) findEnrollment(studentID, courseID int) int {
	for i, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return i
		}
	}
	return -1
}

func (m *MemoryStore) EnrollmentsByStudent(_ context.Context, studentID int) ([]models.Enrollment, error) {
	return m.filterEnrollments(func(e models.Enrollment) bool { return e.StudentID == studentID }), nil
}

func (m *MemoryStore) EnrollmentsByCourse(_ context.Context, courseID int) ([]models.Enrollment, error) {
	return m.filterEnrollments(func(e models.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (m *MemoryStore) filterEnrollments(keep func(models.Enrollment) bool) []models.Enrollment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.Enrollment{}
	for _, e := range m.enrollments {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

func (m *MemoryStore) AppendProgress(_ context.Context, record *models.ProgressRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record.ID = m.ids.NextID(KindProgress)
	m.progress = append(m.progress, *record)
	return nil
}

func (m *MemoryStore) ProgressFor(_ context.Context, studentID, courseID int) ([]models.ProgressRecord, error) {
	return m.filterProgress(func(p models.ProgressRecord) bool {
		return p.StudentID == studentID && p.CourseID == courseID
	}), nil
}

func (m *MemoryStore) ProgressByStudent(_ context.Context, studentID int) ([]models.ProgressRecord, error) {
	return m.filterProgress(func(p models.ProgressRecord) bool { return p.StudentID == studentID }), nil
}

func (m *MemoryStore) ProgressByCourse(_ context.Context, courseID int) ([]models.ProgressRecord, error) {
	return m.filterProgress(func(p models.ProgressRecord) bool { return p.CourseID == courseID }), nil
}

func (m *MemoryStore) filterProgress(keep func(models.ProgressRecord) bool) []models.ProgressRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.ProgressRecord{}
	for _, p := range m.progress {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
