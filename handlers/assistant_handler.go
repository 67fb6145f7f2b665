package handlers

import (
	"strings"

	"github.com/anjiri1684/edu_assist/ai"
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
)

const dobbySystemPrompt = `You are Dobby, a friendly and knowledgeable AI educational assistant. Your role is to:
1. Help students understand complex concepts clearly
2. Provide step-by-step explanations
3. Give examples when helpful
4. Be encouraging and supportive
5. Ask clarifying questions if needed
6. Use simple language appropriate for students

Always be helpful, patient, and educational in your responses.`

type ChatRequest struct {
	Message string `json:"message"`
}

// DobbyChat proxies a student message to the assistant and awards 2 points
// for the educational activity.
func DobbyChat(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Message is required"})
	}

	response, err := ai.ChatCompletion(dobbySystemPrompt, message, 500, 0.7)
	if err != nil {
		return handleServiceError(c, err)
	}

	if err := services.AwardPoints(database.DB, userID, 2, "Used Dobby AI Assistant"); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"response":      response,
		"points_earned": 2,
	})
}

type FlashcardRequest struct {
	Topic string `json:"topic"`
}

func GenerateFlashcards(c *fiber.Ctx) error {
	var req FlashcardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if strings.TrimSpace(req.Topic) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Topic is required"})
	}

	flashcards, err := ai.GenerateFlashcards(strings.TrimSpace(req.Topic))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "flashcards": flashcards})
}
