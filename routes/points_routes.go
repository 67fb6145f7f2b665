package routes

import (
	"github.com/anjiri1684/edu_assist/handlers"
	"github.com/anjiri1684/edu_assist/middleware"
	"github.com/gofiber/fiber/v2"
)

func PointsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	points := api.Group("/points", middleware.Protected())
	points.Get("/transactions", handlers.GetPointsHistory)

	redeem := api.Group("/redeem", middleware.Protected())
	redeem.Post("", handlers.RedeemPoints)
	redeem.Get("/history", handlers.ListMyRewardCodes)
}
