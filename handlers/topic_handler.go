package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
	"github.com/gofiber/fiber/v2"
)

type CreateTopicRequest struct {
	Topic       string  `json:"topic" validate:"required"`
	Description *string `json:"description"`
}

func ListLearningTopics(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var topics []models.LearningTopic
	if err := database.DB.Where("student_id = ?", studentID).Find(&topics).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to retrieve topics"})
	}

	return c.JSON(fiber.Map{"success": true, "topics": topics})
}

func CreateLearningTopic(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	topic := models.LearningTopic{
		StudentID:   studentID,
		Topic:       req.Topic,
		Description: req.Description,
	}
	if err := database.DB.Create(&topic).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to add topic"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Topic added"})
}
