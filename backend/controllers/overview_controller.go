package controllers

import (
	"elearning/backend/services"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type OverviewController struct {
	Tracker *services.TrackerService
}

func NewOverviewController(tracker *services.TrackerService) *OverviewController {
	return &OverviewController{Tracker: tracker}
}

// GetDashboard godoc
// @Summary Student dashboard
// @Description Enrolled courses with progress, statistics and the five most recent progress records
// @Tags overview
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} models.Dashboard
// @Router /dashboard/{student_id} [get]
func (oc *OverviewController) GetDashboard(c *fiber.Ctx) error {
	studentID, ok := paramID(c, "student_id")
	if !ok {
		return utils.NotFound(c, "Student not found")
	}

	dashboard, err := oc.Tracker.Dashboard(c.UserContext(), studentID)
	if err != nil {
		return handleError(c, err, "Student not found")
	}
	return utils.OK(c, dashboard)
}

// GetStudent возвращает профиль студента
func (oc *OverviewController) GetStudent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.NotFound(c, "Student not found")
	}

	student, err := oc.Tracker.Student(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Student not found")
	}
	return utils.OK(c, student)
}
