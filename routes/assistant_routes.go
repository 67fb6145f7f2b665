package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func AssistantRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	assistant := api.Group("/assistant", middleware.Protected())
	assistant.Post("/chat", handlers.DobbyChat)

	flashcards := api.Group("/flashcards", middleware.Protected(), middleware.StudentRequired())
	flashcards.Post("/generate", handlers.GenerateFlashcards)
}
