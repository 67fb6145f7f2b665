package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func TopicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	topics := api.Group("/learning-topics", middleware.Protected())
	topics.Get("", handlers.ListLearningTopics)
	topics.Post("", handlers.CreateLearningTopic)
}
