package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
)

func GetPointsHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)

	transactions, err := services.GetPointsHistory(database.DB, userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "transactions": transactions})
}
