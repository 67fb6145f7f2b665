package handlers

import (
	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StartQnARequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty"`
}

// StartQnA issues a fresh question set and a session id to submit against.
// Correct answers are stripped from the response.
func StartQnA(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req StartQnARequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	session, questions, err := services.StartQnASession(database.DB, studentID, req.Topic, req.Difficulty)
	if err != nil {
		return handleServiceError(c, err)
	}

	type questionForStudent struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	questionsForStudent := make([]questionForStudent, len(questions))
	for i, q := range questions {
		questionsForStudent[i] = questionForStudent{Question: q.Question, Options: q.Options}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": session.ID,
		"difficulty": session.Difficulty,
		"questions":  questionsForStudent,
	})
}

type SubmitQnARequest struct {
	SessionID string         `json:"session_id" validate:"required,uuid"`
	Answers   map[string]int `json:"answers" validate:"required,min=1"`
}

func SubmitQnA(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req SubmitQnARequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Session ID and answers are required"})
	}

	sessionID, _ := uuid.Parse(req.SessionID)
	result, err := services.SubmitQnAAnswers(database.DB, studentID, sessionID, req.Answers)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"results":         result.Results,
		"score":           result.Score,
		"total_questions": result.TotalQuestions,
		"percentage":      result.Percentage,
		"points_earned":   result.PointsEarned,
		"difficulty":      result.Difficulty,
	})
}
