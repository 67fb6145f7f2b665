package handlers

import (
	"fmt"
	"strings"

	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
	"github.com/anjiri1684/edu_assist/notifications"
	"github.com/anjiri1684/edu_assist/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListAllDoubts returns every doubt newest-first for the teacher dashboard.
func ListAllDoubts(c *fiber.Ctx) error {
	var doubts []models.Doubt
	if err := database.DB.Preload("Student").
		Order("created_at desc").
		Find(&doubts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to retrieve doubts"})
	}

	formatted := make([]fiber.Map, 0, len(doubts))
	for _, d := range doubts {
		studentName := "Unknown"
		if d.Student.Name != "" {
			studentName = d.Student.Name
		}
		formatted = append(formatted, fiber.Map{
			"id":              d.ID,
			"topic":           d.Topic,
			"question":        d.Question,
			"question_image":  d.QuestionImage,
			"status":          d.Status,
			"created_at":      d.CreatedAt,
			"student_name":    studentName,
			"answer":          d.Answer,
			"answer_image":    d.AnswerImage,
			"answered_at":     d.AnsweredAt,
			"rating":          d.Rating,
			"upvoted":         d.Upvoted,
			"downvoted":       d.Downvoted,
			"student_comment": d.StudentComment,
			"teacher_reply":   d.TeacherReply,
			"final_rating":    d.FinalRating,
			"final_upvoted":   d.FinalUpvoted,
			"points_awarded":  d.PointsAwarded,
		})
	}

	return c.JSON(fiber.Map{"success": true, "doubts": formatted})
}

type AnswerDoubtRequest struct {
	DoubtID string `json:"doubt_id"`
	Answer  string `json:"answer"`
}

// AnswerDoubt accepts either JSON or a multipart form with an optional
// answer_image file.
func AnswerDoubt(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	var doubtIDValue, answer string
	var answerImage *string

	if strings.Contains(c.Get("Content-Type"), "multipart/form-data") {
		doubtIDValue = c.FormValue("doubt_id")
		answer = c.FormValue("answer")

		uploaded, err := uploadImage(c, "answer_image", "answers")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to upload image"})
		}
		answerImage = uploaded
	} else {
		var req AnswerDoubtRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
		}
		doubtIDValue = req.DoubtID
		answer = req.Answer
	}

	doubtID, err := uuid.Parse(doubtIDValue)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Doubt ID and answer are required"})
	}

	doubt, err := services.AnswerDoubt(database.DB, teacherID, doubtID, answer, answerImage)
	if err != nil {
		return handleServiceError(c, err)
	}

	go notifyDoubtAnswered(doubt)

	return c.JSON(fiber.Map{"success": true, "message": "Doubt answered successfully"})
}

func notifyDoubtAnswered(doubt *models.Doubt) {
	var student models.User
	if err := database.DB.First(&student, "id = ?", doubt.StudentID).Error; err != nil {
		return
	}
	subject := fmt.Sprintf("Your doubt on %s has been answered", doubt.Topic)
	body := fmt.Sprintf("<h1>Good news, %s!</h1><p>A teacher has answered your doubt on <b>%s</b>. Log in to read the answer and leave feedback.</p>", student.Name, doubt.Topic)
	notifications.SendEmail(student.Name, student.Email, subject, body)
}

type ReplyRequest struct {
	DoubtID string `json:"doubt_id" validate:"required,uuid"`
	Reply   string `json:"reply" validate:"required"`
}

// ReplyToComment lets the teacher respond to a student's feedback comment.
func ReplyToComment(c *fiber.Ctx) error {
	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	doubtID, _ := uuid.Parse(req.DoubtID)
	if err := services.ReplyToComment(database.DB, doubtID, req.Reply); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Reply sent successfully"})
}

func GetTeacherStats(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	stats, err := services.GetTeacherStats(database.DB, teacherID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "stats": stats})
}
