package services

import (
	"context"
	"strings"

	"elearning/backend/models"
	"elearning/backend/store"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type CatalogService struct {
	Store store.Store
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

// ListCourses applies every non-empty filter field; the filters compose with AND.
// Search is a case-insensitive substring match over title, description and instructor.
func (s *CatalogService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.Store.Courses(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	result := []models.Course{}
	for _, c := range courses {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Level != "" && c.Level != filter.Level {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) &&
			!strings.Contains(strings.ToLower(c.Instructor), search) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *CatalogService) GetCourse(ctx context.Context, id int) (models.Course, error) {
	return s.Store.Course(ctx, id)
}

// CategoryStats groups the catalog by category
func (s *CatalogService) CategoryStats(ctx context.Context) (map[string]models.CategoryStats, error) {
	courses, err := s.Store.Courses(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make(map[string]float64)
	stats := make(map[string]models.CategoryStats)
	for _, c := range courses {
		st := stats[c.Category]
		st.CourseCount++
		st.TotalStudents += c.StudentsCount
		ratings[c.Category] += c.Rating
		stats[c.Category] = st
	}

	for category, st := range stats {
		st.Name = CategoryLabel(category)
		st.AvgRating = ratings[category] / float64(st.CourseCount)
		stats[category] = st
	}
	return stats, nil
}

// CategoryLabel turns a category slug like "data-science" into "Data Science"
func CategoryLabel(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}
