package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	upload := api.Group("/uploads", middleware.Protected())
	upload.Get("/signature", handlers.GenerateUploadSignature)
}
