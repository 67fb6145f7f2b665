package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func DoubtRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	doubts := api.Group("/doubts", middleware.Protected())
	doubts.Get("", handlers.ListMyDoubts)
	doubts.Post("", middleware.StudentRequired(), handlers.SubmitDoubt)
	doubts.Post("/rate", middleware.StudentRequired(), handlers.RateAnswer)
	doubts.Post("/final-rating", middleware.StudentRequired(), handlers.SubmitFinalRating)
}
