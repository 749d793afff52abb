package controllers

import (
	"elearning/backend/models"
	"elearning/backend/services"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog *services.CatalogService
	Tracker *services.TrackerService
}

func NewCoursesController(catalog *services.CatalogService, tracker *services.TrackerService) *CoursesController {
	return &CoursesController{Catalog: catalog, Tracker: tracker}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns catalog courses. Filters compose with AND; search matches title, description and instructor
// @Tags courses
// @Produce json
// @Param category query string false "Exact category"
// @Param level query string false "Exact level"
// @Param search query string false "Case-insensitive substring"
// @Success 200 {array} models.Course
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	filter := models.CourseFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
	}

	courses, err := cc.Catalog.ListCourses(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err, "Course not found")
	}
	return utils.OK(c, courses)
}

// GetCourse godoc
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	course, err := cc.Catalog.GetCourse(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Course not found")
	}
	return utils.OK(c, course)
}

// GetCourseAnalytics возвращает прогресс всех записанных на курс студентов
func (cc *CoursesController) GetCourseAnalytics(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	analytics, err := cc.Tracker.CourseAnalytics(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Course not found")
	}
	return utils.OK(c, analytics)
}
