package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	qna := api.Group("/qna", middleware.Protected())
	qna.Post("/start", handlers.StartQnA)
	qna.Post("/submit", handlers.SubmitQnA)
}
