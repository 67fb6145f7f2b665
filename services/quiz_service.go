package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/anjiri1684/edu_assist/ai"
	"github.com/anjiri1684/edu_assist/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const pointsPerCorrectAnswer = 10

// StartQnASession generates a question set for the topic, persists it on the
// session row and bumps the student's session counter. Grading later runs
// against this stored set, never a regenerated one.
func StartQnASession(db *gorm.DB, studentID uuid.UUID, topic, difficulty string) (*models.QnASession, []ai.QuizQuestion, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, nil, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}

	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	if difficulty != "easy" && difficulty != "medium" && difficulty != "hard" {
		difficulty = "medium"
	}

	questions := ai.GenerateQuizQuestions(topic, difficulty)
	encoded, err := json.Marshal(questions)
	if err != nil {
		return nil, nil, err
	}

	session := models.QnASession{
		StudentID:  studentID,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  string(encoded),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		result := tx.Model(&models.User{}).
			Where("id = ?", studentID).
			Update("qna_sessions", gorm.Expr("qna_sessions + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &session, questions, nil
}

type AnswerResult struct {
	Question      string   `json:"question"`
	UserAnswer    int      `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
}

type QnAResult struct {
	Results        []AnswerResult `json:"results"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     float64        `json:"percentage"`
	PointsEarned   int            `json:"points_earned"`
	Difficulty     string         `json:"difficulty"`
}

// SubmitQnAAnswers grades a submission against the question set stored when
// the session started. Answers are keyed by question index; a missing answer
// counts as wrong. Each correct answer earns 10 points through the ledger.
func SubmitQnAAnswers(db *gorm.DB, studentID, sessionID uuid.UUID, answers map[string]int) (*QnAResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answers are required", ErrInvalidInput)
	}

	var result *QnAResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.QnASession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if session.StudentID != studentID {
			return ErrForbidden
		}
		if session.Completed {
			return fmt.Errorf("%w: session has already been submitted", ErrInvalidInput)
		}

		var questions []ai.QuizQuestion
		if err := json.Unmarshal([]byte(session.Questions), &questions); err != nil {
			return err
		}

		correct := 0
		results := make([]AnswerResult, 0, len(questions))
		for i, q := range questions {
			userAnswer, ok := answers[fmt.Sprintf("%d", i)]
			if !ok {
				userAnswer = -1
			}
			isCorrect := userAnswer == q.CorrectAnswer
			if isCorrect {
				correct++
			}
			results = append(results, AnswerResult{
				Question:      q.Question,
				UserAnswer:    userAnswer,
				CorrectAnswer: q.CorrectAnswer,
				IsCorrect:     isCorrect,
				Explanation:   q.Explanation,
				Options:       q.Options,
			})
		}

		pointsEarned := correct * pointsPerCorrectAnswer
		if pointsEarned > 0 {
			reason := fmt.Sprintf("QnA Session: %s (%s)", session.Topic, session.Difficulty)
			if err := AwardPoints(tx, studentID, pointsEarned, reason); err != nil {
				return err
			}
		}

		session.CorrectAnswers = correct
		session.PointsEarned = pointsEarned
		session.Completed = true
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		result = &QnAResult{
			Results:        results,
			Score:          correct,
			TotalQuestions: len(questions),
			Percentage:     math.Round(float64(correct)/float64(len(questions))*1000) / 10,
			PointsEarned:   pointsEarned,
			Difficulty:     session.Difficulty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
