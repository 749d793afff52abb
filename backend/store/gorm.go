package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elearning/backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type courseRow struct {
	ID            int `gorm:"primaryKey;autoIncrement:false"`
	Title         string
	Description   string
	Instructor    string
	Duration      string
	Level         string `gorm:"index"`
	Price         float64
	Rating        float64
	StudentsCount int
	Category      string `gorm:"index"`
	Image         string
	Modules       datatypes.JSONSlice[models.Module]
	CreatedAt     time.Time
}

func (courseRow) TableName() string { return "courses" }

type studentRow struct {
	ID               int `gorm:"primaryKey;autoIncrement:false"`
	Name             string
	Email            string
	JoinedDate       time.Time
	CoursesCompleted int
	TotalHours       float64
}

func (studentRow) TableName() string { return "students" }

type quizRow struct {
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	CourseID  int `gorm:"index"`
	ModuleID  int
	Title     string
	Questions datatypes.JSONSlice[models.Question]
}

func (quizRow) TableName() string { return "quizzes" }

type enrollmentRow struct {
	ID                 int `gorm:"primaryKey;autoIncrement:false"`
	StudentID          int `gorm:"uniqueIndex:idx_enrollment_pair"`
	CourseID           int `gorm:"uniqueIndex:idx_enrollment_pair"`
	EnrolledDate       time.Time
	ProgressPercentage float64
	Completed          bool
}

func (enrollmentRow) TableName() string { return "enrollments" }

type progressRow struct {
	ID             int `gorm:"primaryKey;autoIncrement:false"`
	StudentID      int `gorm:"index:idx_progress_pair"`
	CourseID       int `gorm:"index:idx_progress_pair"`
	ModuleID       int
	Completed      bool
	CompletionDate *time.Time
	TimeSpent      float64
}

func (progressRow) TableName() string { return "progress_records" }

// GormStore keeps the collections in a SQLite database opened in memory mode.
type GormStore struct {
	DB  *gorm.DB
	ids IDGenerator
}

// OpenSQLite opens dsn, migrates the schema and returns the store.
// Use a "mode=memory" DSN to keep the data inside the process.
func OpenSQLite(dsn string, ids IDGenerator, logWriter logger.Writer) (*GormStore, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if logWriter != nil {
		gormLogger = logger.New(logWriter, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// a single connection keeps an in-memory database alive and serialises writers
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return NewGormStore(db, ids)
}

func NewGormStore(db *gorm.DB, ids IDGenerator) (*GormStore, error) {
	if ids == nil {
		ids = NewSequence()
	}
	err := db.AutoMigrate(
		&courseRow{},
		&studentRow{},
		&quizRow{},
		&enrollmentRow{},
		&progressRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{DB: db, ids: ids}, nil
}

// Close releases the underlying connection; an in-memory database is dropped.
func (g *GormStore) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notFound maps gorm.ErrRecordNotFound onto ErrNotFound
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (g *GormStore) SaveCourse(ctx context.Context, course models.Course) error {
	row := courseRow{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		Instructor:    course.Instructor,
		Duration:      course.Duration,
		Level:         course.Level,
		Price:         course.Price,
		Rating:        course.Rating,
		StudentsCount: course.StudentsCount,
		Category:      course.Category,
		Image:         course.Image,
		Modules:       datatypes.JSONSlice[models.Module](course.Modules),
		CreatedAt:     course.CreatedAt,
	}
	return g.DB.WithContext(ctx).Save(&row).Error
}

func (g *GormStore) Courses(ctx context.Context) ([]models.Course, error) {
	var rows []courseRow
	if err := g.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toModel())
	}
	return courses, nil
}

func (g *GormStore) Course(ctx context.Context, id int) (models.Course, error) {
	var row courseRow
	if err := g.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Course{}, notFound(err, fmt.Sprintf("course %d", id))
	}
	return row.toModel(), nil
}

func (r courseRow) toModel() models.Course {
	return models.Course{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Instructor:    r.Instructor,
		Duration:      r.Duration,
		Level:         r.Level,
		Price:         r.Price,
		Rating:        r.Rating,
		StudentsCount: r.StudentsCount,
		Category:      r.Category,
		Image:         r.Image,
		Modules:       []models.Module(r.Modules),
		CreatedAt:     r.CreatedAt,
	}
}

func (g *GormStore) SaveStudent(ctx context.Context, student models.Student) error {
	row := studentRow{
		ID:               student.ID,
		Name:             student.Name,
		Email:            student.Email,
		JoinedDate:       student.JoinedDate,
		CoursesCompleted: student.CoursesCompleted,
		TotalHours:       student.TotalHours,
	}
	return g.DB.WithContext(ctx).Save(&row).Error
}

func (g *GormStore) Student(ctx context.Context, id int) (models.Student, error) {
	var row studentRow
	if err := g.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Student{}, notFound(err, fmt.Sprintf("student %d", id))
	}
	return models.Student{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		JoinedDate:       row.JoinedDate,
		CoursesCompleted: row.CoursesCompleted,
		TotalHours:       row.TotalHours,
	}, nil
}

func (g *GormStore) SaveQuiz(ctx context.Context, quiz models.Quiz) error {
	row := quizRow{
		ID:        quiz.ID,
		CourseID:  quiz.CourseID,
		ModuleID:  quiz.ModuleID,
		Title:     quiz.Title,
		Questions: datatypes.JSONSlice[models.Question](quiz.Questions),
	}
	return g.DB.WithContext(ctx).Save(&row).Error
}

func (g *GormStore) Quiz(ctx context.Context, id int) (models.Quiz, error) {
	var row quizRow
	if err := g.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Quiz{}, notFound(err, fmt.Sprintf("quiz %d", id))
	}
	return models.Quiz{
		ID:        row.ID,
		CourseID:  row.CourseID,
		ModuleID:  row.ModuleID,
		Title:     row.Title,
		Questions: []models.Question(row.Questions),
	}, nil
}

func (g *GormStore) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&enrollmentRow{}).
			Where("student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("student %d course %d: %w", enrollment.StudentID, enrollment.CourseID, ErrDuplicate)
		}

		row := enrollmentRow{
			ID:                 g.ids.NextID(KindEnrollment),
			StudentID:          enrollment.StudentID,
			CourseID:           enrollment.CourseID,
			EnrolledDate:       enrollment.EnrolledDate,
			ProgressPercentage: enrollment.ProgressPercentage,
			Completed:          enrollment.Completed,
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("student %d course %d: %w", enrollment.StudentID, enrollment.CourseID, ErrDuplicate)
			}
			return fmt.Errorf("create enrollment: %w", err)
		}
		enrollment.ID = row.ID
		return nil
	})
}

func (g *GormStore) UpdateEnrollment(ctx context.Context, enrollment models.Enrollment) error {
	result := g.DB.WithContext(ctx).Model(&enrollmentRow{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]interface{}{
			"progress_percentage": enrollment.ProgressPercentage,
			"completed":           enrollment.Completed,
		})
	if result.Error != nil {
		return fmt.Errorf("update enrollment %d: %w", enrollment.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("enrollment %d: %w", enrollment.ID, ErrNotFound)
	}
	return nil
}

func (g *GormStore) FindEnrollment(ctx context.Context, studentID, courseID int) (models.Enrollment, error) {
	var row enrollmentRow
	err := g.DB.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&row).Error
	if err != nil {
		return models.Enrollment{}, notFound(err, fmt.Sprintf("student %d course %d", studentID, courseID))
	}
	return row.toModel(), nil
}

func (g *GormStore) EnrollmentsByStudent(ctx context.Context, studentID int) ([]models.Enrollment, error) {
	return g.findEnrollments(ctx, "student_id = ?", studentID)
}

func (g *GormStore) EnrollmentsByCourse(ctx context.Context, courseID int) ([]models.Enrollment, error) {
	return g.findEnrollments(ctx, "course_id = ?", courseID)
}

func (g *GormStore) findEnrollments(ctx context.Context, query string, args ...interface{}) ([]models.Enrollment, error) {
	var rows []enrollmentRow
	if err := g.DB.WithContext(ctx).Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	enrollments := make([]models.Enrollment, 0, len(rows))
	for _, row := range rows {
		enrollments = append(enrollments, row.toModel())
	}
	return enrollments, nil
}

func (r enrollmentRow) toModel() models.Enrollment {
	return models.Enrollment{
		ID:                 r.ID,
		StudentID:          r.StudentID,
		CourseID:           r.CourseID,
		EnrolledDate:       r.EnrolledDate,
		ProgressPercentage: r.ProgressPercentage,
		Completed:          r.Completed,
	}
}

func (g *GormStore) AppendProgress(ctx context.Context, record *models.ProgressRecord) error {
	row := progressRow{
		ID:             g.ids.NextID(KindProgress),
		StudentID:      record.StudentID,
		CourseID:       record.CourseID,
		ModuleID:       record.ModuleID,
		Completed:      record.Completed,
		CompletionDate: record.CompletionDate,
		TimeSpent:      record.TimeSpent,
	}
	if err := g.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append progress: %w", err)
	}
	record.ID = row.ID
	return nil
}

func (g *GormStore) ProgressFor(ctx context.Context, studentID, courseID int) ([]models.ProgressRecord, error) {
	return g.findProgress(ctx, "student_id = ? AND course_id = ?", studentID, courseID)
}

func (g *GormStore) ProgressByStudent(ctx context.Context, studentID int) ([]models.ProgressRecord, error) {
	return g.findProgress(ctx, "student_id = ?", studentID)
}

func (g *GormStore) ProgressByCourse(ctx context.Context, courseID int) ([]models.ProgressRecord, error) {
	return g.findProgress(ctx, "course_id = ?", courseID)
}

func (g *GormStore) findProgress(ctx context.Context, query string, args ...interface{}) ([]models.ProgressRecord, error) {
	var rows []progressRow
	if err := g.DB.WithContext(ctx).Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	records := make([]models.ProgressRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ProgressRecord{
			ID:             row.ID,
			StudentID:      row.StudentID,
			CourseID:       row.CourseID,
			ModuleID:       row.ModuleID,
			Completed:      row.Completed,
			CompletionDate: row.CompletionDate,
			TimeSpent:      row.TimeSpent,
		})
	}
	return records, nil
}
