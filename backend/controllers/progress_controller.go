package controllers

import (
	"strconv"

	"elearning/backend/models"
	"elearning/backend/services"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Tracker *services.TrackerService
}

func NewProgressController(tracker *services.TrackerService) *ProgressController {
	return &ProgressController{Tracker: tracker}
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Tags progress
// @Accept json
// @Produce json
// @Param input body models.EnrollInput true "Student and course"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} utils.ErrorResponse
// @Router /enroll [post]
func (pc *ProgressController) Enroll(c *fiber.Ctx) error {
	var input models.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}

	enrollment, err := pc.Tracker.Enroll(c.UserContext(), input.StudentID, input.CourseID)
	if err != nil {
		return handleError(c, err, "Enrollment not found")
	}
	return utils.Created(c, enrollment)
}

// GetProgress отдает записи прогресса пары студент/курс. Отсутствующий или нулевой id дает пустой массив
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Query("student_id"))
	if err != nil || studentID == 0 {
		return utils.OK(c, []models.ProgressRecord{})
	}
	courseID, err := strconv.Atoi(c.Query("course_id"))
	if err != nil || courseID == 0 {
		return utils.OK(c, []models.ProgressRecord{})
	}

	records, err := pc.Tracker.GetProgress(c.UserContext(), studentID, courseID)
	if err != nil {
		return handleError(c, err, "Progress not found")
	}
	return utils.OK(c, records)
}

// RecordProgress godoc
// @Summary Record module progress
// @Description Appends a progress record and recomputes the matching enrollment
// @Tags progress
// @Accept json
// @Produce json
// @Param input body models.ProgressInput true "Progress"
// @Success 201 {object} models.ProgressRecord
// @Router /progress [post]
func (pc *ProgressController) RecordProgress(c *fiber.Ctx) error {
	var input models.ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}

	record, err := pc.Tracker.RecordProgress(c.UserContext(), input)
	if err != nil {
		return handleError(c, err, "Progress not found")
	}
	return utils.Created(c, record)
}
