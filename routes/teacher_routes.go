package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teacher := api.Group("/teacher", middleware.Protected(), middleware.TeacherRequired())
	teacher.Get("/doubts", handlers.ListAllDoubts)
	teacher.Post("/doubts/answer", handlers.AnswerDoubt)
	teacher.Post("/doubts/reply", handlers.ReplyToComment)
	teacher.Get("/stats", handlers.GetTeacherStats)
}
