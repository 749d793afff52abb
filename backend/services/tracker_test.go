package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"elearning/backend/models"
	"elearning/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances one minute per call
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func newTracker(t *testing.T, countDuplicates bool) *TrackerService {
	t.Helper()
	svc := NewTrackerService(seededStore(t), countDuplicates)
	svc.Now = stepClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	return svc
}

func complete(t *testing.T, svc *TrackerService, studentID, courseID, moduleID int) models.ProgressRecord {
	t.Helper()
	record, err := svc.RecordProgress(context.Background(), models.ProgressInput{
		StudentID: studentID,
		CourseID:  courseID,
		ModuleID:  moduleID,
		Completed: true,
		TimeSpent: 15,
	})
	require.NoError(t, err)
	return record
}

func TestEnroll(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()

	first, err := svc.Enroll(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 1, first.StudentID)
	assert.Equal(t, 1, first.CourseID)
	assert.Equal(t, 0.0, first.ProgressPercentage)
	assert.False(t, first.Completed)
	assert.False(t, first.EnrolledDate.IsZero())

	_, err = svc.Enroll(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	second, err := svc.Enroll(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestEnrollDoesNotCheckReferences(t *testing.T) {
	svc := newTracker(t, false)

	enrollment, err := svc.Enroll(context.Background(), 404, 404)
	require.NoError(t, err)
	assert.Equal(t, 404, enrollment.CourseID)
}

func TestRecordProgressAppends(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()

	started, err := svc.RecordProgress(ctx, models.ProgressInput{StudentID: 1, CourseID: 1, ModuleID: 1, TimeSpent: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, started.ID)
	assert.False(t, started.Completed)
	assert.Nil(t, started.CompletionDate)

	done := complete(t, svc, 1, 1, 1)
	assert.Equal(t, 2, done.ID)
	require.NotNil(t, done.CompletionDate)

	records, err := svc.GetProgress(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	other, err := svc.GetProgress(ctx, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestProgressPercentageAndCompletion(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, 1, 1)
	require.NoError(t, err)

	for module := 1; module <= 5; module++ {
		complete(t, svc, 1, 1, module)

		enrollment, err := svc.Store.FindEnrollment(ctx, 1, 1)
		require.NoError(t, err)
		assert.InDelta(t, float64(module)/5*100, enrollment.ProgressPercentage, 1e-9)
		assert.Equal(t, module == 5, enrollment.Completed)
	}

	enrollment, err := svc.Store.FindEnrollment(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, enrollment.ProgressPercentage)
	assert.True(t, enrollment.Completed)
}

func TestIncompleteRecordsDoNotCount(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()
	_, err := svc.Enroll(ctx, 1, 1)
	require.NoError(t, err)

	_, err = svc.RecordProgress(ctx, models.ProgressInput{StudentID: 1, CourseID: 1, ModuleID: 1})
	require.NoError(t, err)

	enrollment, err := svc.Store.FindEnrollment(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, enrollment.ProgressPercentage)
}

func TestDuplicateCompletions(t *testing.T) {
	t.Run("distinct modules by default", func(t *testing.T) {
		svc := newTracker(t, false)
		ctx := context.Background()
		_, err := svc.Enroll(ctx, 1, 1)
		require.NoError(t, err)

		for i := 0; i < 7; i++ {
			complete(t, svc, 1, 1, 1)
		}
		complete(t, svc, 1, 1, 42) // not a module of the course

		enrollment, err := svc.Store.FindEnrollment(ctx, 1, 1)
		require.NoError(t, err)
		assert.InDelta(t, 20.0, enrollment.ProgressPercentage, 1e-9)
		assert.False(t, enrollment.Completed)
	})

	t.Run("every record counts when configured", func(t *testing.T) {
		svc := newTracker(t, true)
		ctx := context.Background()
		_, err := svc.Enroll(ctx, 1, 1)
		require.NoError(t, err)

		for i := 0; i < 6; i++ {
			complete(t, svc, 1, 1, 1)
		}

		enrollment, err := svc.Store.FindEnrollment(ctx, 1, 1)
		require.NoError(t, err)
		assert.InDelta(t, 120.0, enrollment.ProgressPercentage, 1e-9)
		assert.False(t, enrollment.Completed)
	})
}

func TestProgressWithoutEnrollmentLeavesNothingToUpdate(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()

	complete(t, svc, 2, 3, 1)

	_, err := svc.Store.FindEnrollment(ctx, 2, 3)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDashboard(t *testing.T) {
	t.Run("one enrollment without progress", func(t *testing.T) {
		svc := newTracker(t, false)
		ctx := context.Background()
		_, err := svc.Enroll(ctx, 1, 1)
		require.NoError(t, err)

		dashboard, err := svc.Dashboard(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.DashboardStatistics{
			TotalCourses:      1,
			CompletedCourses:  0,
			InProgressCourses: 1,
			AverageProgress:   0,
		}, dashboard.Statistics)
		require.Len(t, dashboard.EnrolledCourses, 1)
		assert.Equal(t, "Python Programming Fundamentals", dashboard.EnrolledCourses[0].Title)
		assert.Empty(t, dashboard.RecentActivity)
	})

	t.Run("no enrollments", func(t *testing.T) {
		svc := newTracker(t, false)

		dashboard, err := svc.Dashboard(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, models.DashboardStatistics{}, dashboard.Statistics)
		assert.NotNil(t, dashboard.EnrolledCourses)
		assert.Empty(t, dashboard.EnrolledCourses)
	})

	t.Run("mixed progress", func(t *testing.T) {
		svc := newTracker(t, false)
		ctx := context.Background()
		for _, course := range []int{1, 2, 999} {
			_, err := svc.Enroll(ctx, 1, course)
			require.NoError(t, err)
		}
		for module := 1; module <= 5; module++ {
			complete(t, svc, 1, 1, module)
		}
		complete(t, svc, 1, 2, 1)

		dashboard, err := svc.Dashboard(ctx, 1)
		require.NoError(t, err)

		// course 999 is not in the catalog and is skipped
		require.Len(t, dashboard.EnrolledCourses, 2)
		assert.True(t, dashboard.EnrolledCourses[0].Completed)
		assert.Equal(t, 100.0, dashboard.EnrolledCourses[0].Progress)
		assert.InDelta(t, 20.0, dashboard.EnrolledCourses[1].Progress, 1e-9)
		assert.Equal(t, 2, dashboard.Statistics.TotalCourses)
		assert.Equal(t, 1, dashboard.Statistics.CompletedCourses)
		assert.Equal(t, 1, dashboard.Statistics.InProgressCourses)
		assert.InDelta(t, 60.0, dashboard.Statistics.AverageProgress, 1e-9)

		require.Len(t, dashboard.RecentActivity, RecentActivityLimit)
		assert.Equal(t, 6, dashboard.RecentActivity[0].ID)
		assert.Equal(t, 2, dashboard.RecentActivity[4].ID)
	})
}

func TestRecentActivityOrdering(t *testing.T) {
	at := func(minute int) *time.Time {
		ts := time.Date(2025, 1, 1, 10, minute, 0, 0, time.UTC)
		return &ts
	}
	records := []models.ProgressRecord{
		{ID: 1, CompletionDate: at(5)},
		{ID: 2},
		{ID: 3, CompletionDate: at(30)},
		{ID: 4, CompletionDate: at(30)},
		{ID: 5},
		{ID: 6, CompletionDate: at(1)},
	}

	ordered := RecentActivity(records, 10)
	ids := make([]int, 0, len(ordered))
	for _, r := range ordered {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{4, 3, 1, 6, 5, 2}, ids)

	assert.Len(t, RecentActivity(records, 5), 5)
	assert.Equal(t, 1, records[0].ID, "input must not be reordered")
}

func TestCourseAnalytics(t *testing.T) {
	svc := newTracker(t, false)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, 1, 1)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, 2, 1)
	require.NoError(t, err)
	for module := 1; module <= 5; module++ {
		complete(t, svc, 1, 1, module)
	}

	analytics, err := svc.CourseAnalytics(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.CourseID)
	assert.Equal(t, 5, analytics.TotalModules)
	assert.Equal(t, 2, analytics.Enrollments)
	assert.Equal(t, 1, analytics.CompletedCount)
	assert.InDelta(t, 50.0, analytics.AvgProgress, 1e-9)
	assert.InDelta(t, 75.0, analytics.TotalTimeSpent, 1e-9)
	assert.Len(t, analytics.EnrollmentDetail, 2)

	_, err = svc.CourseAnalytics(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudent(t *testing.T) {
	svc := newTracker(t, false)

	student, err := svc.Student(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", student.Name)

	_, err = svc.Student(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// failingEnrollments stores progress normally but cannot read enrollments
type failingEnrollments struct {
	store.Store
}

func (failingEnrollments) FindEnrollment(context.Context, int, int) (models.Enrollment, error) {
	return models.Enrollment{}, errors.New("enrollments unavailable")
}

func TestRecordProgressKeepsRecordWhenRefreshFails(t *testing.T) {
	st := failingEnrollments{Store: seededStore(t)}
	svc := NewTrackerService(st, false)
	ctx := context.Background()

	record, err := svc.RecordProgress(ctx, models.ProgressInput{StudentID: 1, CourseID: 1, ModuleID: 1, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, record.ID)

	stored, err := svc.GetProgress(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record.ID, stored[0].ID)
}
