package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
)

type RedeemRequest struct {
	RewardType string `json:"reward_type"`
}

func RedeemPoints(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if req.RewardType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Reward type is required"})
	}

	result, err := services.RedeemPoints(database.DB, userID, req.RewardType)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"message":          "Points redeemed successfully!",
		"new_points_total": result.NewPointsTotal,
		"reward_code":      result.Code,
	})
}

func ListMyRewardCodes(c *fiber.Ctx) error {
	userID := currentUserID(c)

	codes, err := services.GetRewardHistory(database.DB, userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "reward_codes": codes})
}
