package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitDoubt accepts a multipart form with topic, question and an optional
// question_image file.
func SubmitDoubt(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	topic := c.FormValue("topic")
	question := c.FormValue("question")

	questionImage, err := uploadImage(c, "question_image", "questions")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to upload image"})
	}

	doubt, err := services.SubmitDoubt(database.DB, studentID, topic, question, questionImage)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Doubt submitted",
		"doubt":   doubt,
	})
}

func ListMyDoubts(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var doubts []models.Doubt
	if err := database.DB.Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&doubts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to retrieve doubts"})
	}

	return c.JSON(fiber.Map{"success": true, "doubts": doubts})
}

type RateAnswerRequest struct {
	DoubtID string `json:"doubt_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required"`
	Upvoted bool   `json:"upvoted"`
	Comment string `json:"comment"`
}

// RateAnswer is the initial feedback checkpoint on an answered doubt.
func RateAnswer(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req RateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	doubtID, _ := uuid.Parse(req.DoubtID)
	if err := services.SubmitInitialFeedback(database.DB, studentID, doubtID, req.Rating, req.Upvoted, req.Comment); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Feedback submitted successfully"})
}

type FinalRatingRequest struct {
	DoubtID      string `json:"doubt_id" validate:"required,uuid"`
	FinalRating  int    `json:"final_rating" validate:"required"`
	FinalUpvoted bool   `json:"final_upvoted"`
}

// SubmitFinalRating is the second, independent feedback checkpoint.
func SubmitFinalRating(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req FinalRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	doubtID, _ := uuid.Parse(req.DoubtID)
	if err := services.SubmitFinalFeedback(database.DB, studentID, doubtID, req.FinalRating, req.FinalUpvoted); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Final rating submitted successfully"})
}
