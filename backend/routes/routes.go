package routes

import (
	"elearning/backend/config"
	"elearning/backend/controllers"
	"elearning/backend/services"
	"elearning/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st store.Store, cfg *config.Config) {
	catalog := services.NewCatalogService(st)
	tracker := services.NewTrackerService(st, cfg.CountsDuplicateCompletions())
	quizzes := services.NewQuizService(st)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from the learning catalog API"})
	})

	// Courses routes
	coursesController := controllers.NewCoursesController(catalog, tracker)
	courses := api.Group("/courses")
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Get("/:id/analytics", coursesController.GetCourseAnalytics)

	// Enrollment and progress routes
	progressController := controllers.NewProgressController(tracker)
	api.Post("/enroll", progressController.Enroll)
	api.Get("/progress", progressController.GetProgress)
	api.Post("/progress", progressController.RecordProgress)

	// Quiz routes
	quizzesController := controllers.NewQuizzesController(quizzes)
	api.Get("/quizzes/:id", quizzesController.GetQuiz)
	api.Post("/quizzes/:id/submit", quizzesController.SubmitQuiz)

	// Overview routes
	overviewController := controllers.NewOverviewController(tracker)
	api.Get("/dashboard/:student_id", overviewController.GetDashboard)
	api.Get("/students/:id", overviewController.GetStudent)

	analyticsController := controllers.NewAnalyticsController(catalog)
	api.Get("/categories", analyticsController.GetCategories)
}
