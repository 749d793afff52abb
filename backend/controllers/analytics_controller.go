package controllers

import (
	"elearning/backend/services"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Catalog *services.CatalogService
}

func NewAnalyticsController(catalog *services.CatalogService) *AnalyticsController {
	return &AnalyticsController{Catalog: catalog}
}

// GetCategories godoc
// @Summary Category statistics
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]models.CategoryStats
// @Router /categories [get]
func (ac *AnalyticsController) GetCategories(c *fiber.Ctx) error {
	stats, err := ac.Catalog.CategoryStats(c.UserContext())
	if err != nil {
		return handleError(c, err, "Category not found")
	}
	return utils.OK(c, stats)
}
