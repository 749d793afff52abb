package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"elearning/backend/models"
	"elearning/backend/store"
)

// ErrAlreadyEnrolled is returned when the student already has an enrollment for the course
var ErrAlreadyEnrolled = errors.New("already enrolled")

// RecentActivityLimit is how many progress records the dashboard shows
const RecentActivityLimit = 5

// TrackerService owns enrollments, progress records and everything derived from them.
type TrackerService struct {
	Store store.Store
	Now   func() time.Time
	// CountDuplicateCompletions counts every completed record, so repeated
	// completions of one module can push progress past 100. When false each
	// module of the course counts at most once, and completed records for
	// module ids the course does not have are ignored.
	CountDuplicateCompletions bool

	// serialises check-then-create and append-then-recompute
	mu sync.Mutex
}

func NewTrackerService(st store.Store, countDuplicates bool) *TrackerService {
	return &TrackerService{
		Store:                     st,
		Now:                       time.Now,
		CountDuplicateCompletions: countDuplicates,
	}
}

// Enroll creates the enrollment for the pair with zero progress.
// Student and course ids are not checked against the catalog.
func (s *TrackerService) Enroll(ctx context.Context, studentID, courseID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.Store.FindEnrollment(ctx, studentID, courseID)
	if err == nil {
		return models.Enrollment{}, ErrAlreadyEnrolled
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Enrollment{}, err
	}

	enrollment := models.Enrollment{
		StudentID:    studentID,
		CourseID:     courseID,
		EnrolledDate: s.Now(),
	}
	if err := s.Store.CreateEnrollment(ctx, &enrollment); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// RecordProgress appends a progress record and refreshes the matching enrollment, if any.
// Once the record is stored it is returned; a failed refresh is only logged.
func (s *TrackerService) RecordProgress(ctx context.Context, input models.ProgressInput) (models.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.ProgressRecord{
		StudentID: input.StudentID,
		CourseID:  input.CourseID,
		ModuleID:  input.ModuleID,
		Completed: input.Completed,
		TimeSpent: input.TimeSpent,
	}
	if input.Completed {
		now := s.Now()
		record.CompletionDate = &now
	}

	if err := s.Store.AppendProgress(ctx, &record); err != nil {
		return models.ProgressRecord{}, err
	}
	if err := s.refreshEnrollment(ctx, input.StudentID, input.CourseID); err != nil {
		log.Printf("refresh enrollment student=%d course=%d: %v", input.StudentID, input.CourseID, err)
	}
	return record, nil
}

func (s *TrackerService) refreshEnrollment(ctx context.Context, studentID, courseID int) error {
	enrollment, err := s.Store.FindEnrollment(ctx, studentID, courseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	course, err := s.Store.Course(ctx, courseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	if len(course.Modules) == 0 {
		return nil
	}

	records, err := s.Store.ProgressFor(ctx, studentID, courseID)
	if err != nil {
		return err
	}

	completed := CompletedModules(course, records, s.CountDuplicateCompletions)
	enrollment.ProgressPercentage = float64(completed) / float64(len(course.Modules)) * 100
	enrollment.Completed = enrollment.ProgressPercentage == 100
	return s.Store.UpdateEnrollment(ctx, enrollment)
}

// CompletedModules counts the completed records of one (student, course) pair.
// With countDuplicates every completed record counts; otherwise only distinct
// module ids that belong to the course do.
func CompletedModules(course models.Course, records []models.ProgressRecord, countDuplicates bool) int {
	if countDuplicates {
		n := 0
		for _, r := range records {
			if r.Completed {
				n++
			}
		}
		return n
	}

	inCourse := make(map[int]bool, len(course.Modules))
	for _, m := range course.Modules {
		inCourse[m.ID] = true
	}
	done := make(map[int]bool)
	for _, r := range records {
		if r.Completed && inCourse[r.ModuleID] {
			done[r.ModuleID] = true
		}
	}
	return len(done)
}

// GetProgress returns every record of the pair in the order they were added
func (s *TrackerService) GetProgress(ctx context.Context, studentID, courseID int) ([]models.ProgressRecord, error) {
	return s.Store.ProgressFor(ctx, studentID, courseID)
}

// Dashboard aggregates the enrolled courses, statistics and recent activity of a student.
func (s *TrackerService) Dashboard(ctx context.Context, studentID int) (models.Dashboard, error) {
	enrollments, err := s.Store.EnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return models.Dashboard{}, err
	}

	dashboard := models.Dashboard{EnrolledCourses: []models.EnrolledCourse{}}
	var totalProgress float64
	for _, e := range enrollments {
		course, err := s.Store.Course(ctx, e.CourseID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		} else if err != nil {
			return models.Dashboard{}, err
		}

		dashboard.EnrolledCourses = append(dashboard.EnrolledCourses, models.EnrolledCourse{
			Course:    course,
			Progress:  e.ProgressPercentage,
			Completed: e.Completed,
		})
		totalProgress += e.ProgressPercentage
		if e.Completed {
			dashboard.Statistics.CompletedCourses++
		}
	}

	stats := &dashboard.Statistics
	stats.TotalCourses = len(dashboard.EnrolledCourses)
	stats.InProgressCourses = stats.TotalCourses - stats.CompletedCourses
	if stats.TotalCourses > 0 {
		stats.AverageProgress = totalProgress / float64(stats.TotalCourses)
	}

	records, err := s.Store.ProgressByStudent(ctx, studentID)
	if err != nil {
		return models.Dashboard{}, err
	}
	dashboard.RecentActivity = RecentActivity(records, RecentActivityLimit)
	return dashboard, nil
}

// RecentActivity orders records by completion date, newest first. Records
// without a completion date come after all dated ones; ties go to the higher id.
func RecentActivity(records []models.ProgressRecord, limit int) []models.ProgressRecord {
	sorted := append([]models.ProgressRecord{}, records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CompletionDate, sorted[j].CompletionDate
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		}
		return sorted[i].ID > sorted[j].ID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// CourseAnalytics reports how every enrolled student is doing in one course.
func (s *TrackerService) CourseAnalytics(ctx context.Context, courseID int) (models.CourseAnalytics, error) {
	course, err := s.Store.Course(ctx, courseID)
	if err != nil {
		return models.CourseAnalytics{}, err
	}

	enrollments, err := s.Store.EnrollmentsByCourse(ctx, courseID)
	if err != nil {
		return models.CourseAnalytics{}, err
	}
	records, err := s.Store.ProgressByCourse(ctx, courseID)
	if err != nil {
		return models.CourseAnalytics{}, err
	}

	analytics := models.CourseAnalytics{
		CourseID:         course.ID,
		Title:            course.Title,
		TotalModules:     len(course.Modules),
		Enrollments:      len(enrollments),
		EnrollmentDetail: enrollments,
	}
	var totalProgress float64
	for _, e := range enrollments {
		totalProgress += e.ProgressPercentage
		if e.Completed {
			analytics.CompletedCount++
		}
	}
	if len(enrollments) > 0 {
		analytics.AvgProgress = totalProgress / float64(len(enrollments))
	}
	for _, r := range records {
		analytics.TotalTimeSpent += r.TimeSpent
	}
	return analytics, nil
}

func (s *TrackerService) Student(ctx context.Context, id int) (models.Student, error) {
	return s.Store.Student(ctx, id)
}
