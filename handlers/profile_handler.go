package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":           user.ID,
			"name":         user.Name,
			"email":        user.Email,
			"role":         user.Role,
			"points":       user.Points,
			"doubts_asked": user.DoubtsAsked,
			"qna_sessions": user.QnASessions,
		},
	})
}
