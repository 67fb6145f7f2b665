package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/anjiri1684/edu_assist/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const pointsPerCheckpoint = 10

// SubmitDoubt creates a pending doubt and bumps the student's asked counter.
func SubmitDoubt(db *gorm.DB, studentID uuid.UUID, topic, question string, questionImage *string) (*models.Doubt, error) {
	topic = strings.TrimSpace(topic)
	question = strings.TrimSpace(question)
	if topic == "" || question == "" {
		return nil, fmt.Errorf("%w: topic and question are required", ErrInvalidInput)
	}

	doubt := models.Doubt{
		StudentID:     studentID,
		Topic:         topic,
		Question:      question,
		QuestionImage: questionImage,
		Status:        models.DoubtStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doubt).Error; err != nil {
			return err
		}
		result := tx.Model(&models.User{}).
			Where("id = ?", studentID).
			Update("doubts_asked", gorm.Expr("doubts_asked + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doubt, nil
}

// AnswerDoubt records a teacher's answer and moves the doubt to answered.
func AnswerDoubt(db *gorm.DB, teacherID, doubtID uuid.UUID, answer string, answerImage *string) (*models.Doubt, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}

	var doubt models.Doubt
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&doubt, "id = ?", doubtID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		doubt.Answer = &answer
		doubt.AnswerImage = answerImage
		doubt.TeacherID = &teacherID
		doubt.Status = models.DoubtStatusAnswered
		doubt.AnsweredAt = &now
		return tx.Save(&doubt).Error
	})
	if err != nil {
		return nil, err
	}
	return &doubt, nil
}

// ReplyToComment overwrites the single teacher reply field. Status is
// unchanged and the last write wins.
func ReplyToComment(db *gorm.DB, doubtID uuid.UUID, reply string) error {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fmt.Errorf("%w: reply is required", ErrInvalidInput)
	}

	var doubt models.Doubt
	if err := db.First(&doubt, "id = ?", doubtID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}

	doubt.TeacherReply = &reply
	return db.Save(&doubt).Error
}

// SubmitInitialFeedback records the first rating checkpoint. An upvote stores
// the rating and resolves the doubt; a downvote keeps it answered so the
// conversation can continue. A rating of 4 or 5 on an upvote credits the
// answering teacher once for this checkpoint.
func SubmitInitialFeedback(db *gorm.DB, studentID, doubtID uuid.UUID, rating int, upvoted bool, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		doubt, err := loadOwnedDoubt(tx, doubtID, studentID)
		if err != nil {
			return err
		}

		comment = strings.TrimSpace(comment)
		if upvoted {
			doubt.Upvoted = true
			doubt.Downvoted = false
			doubt.Rating = &rating
			if comment != "" {
				doubt.StudentComment = &comment
			}
			doubt.Status = models.DoubtStatusResolved
		} else {
			doubt.Downvoted = true
			doubt.Upvoted = false
			if comment != "" {
				doubt.StudentComment = &comment
			}
			doubt.Status = models.DoubtStatusAnswered
		}

		if err := creditTeacher(tx, doubt); err != nil {
			return err
		}
		return tx.Save(doubt).Error
	})
}

// SubmitFinalFeedback records the second, independent rating checkpoint.
func SubmitFinalFeedback(db *gorm.DB, studentID, doubtID uuid.UUID, rating int, upvoted bool) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		doubt, err := loadOwnedDoubt(tx, doubtID, studentID)
		if err != nil {
			return err
		}

		doubt.FinalRating = &rating
		doubt.FinalUpvoted = upvoted
		if upvoted && rating >= 4 {
			doubt.Status = models.DoubtStatusResolved
		}

		if err := creditTeacher(tx, doubt); err != nil {
			return err
		}
		return tx.Save(doubt).Error
	})
}

func loadOwnedDoubt(tx *gorm.DB, doubtID, studentID uuid.UUID) (*models.Doubt, error) {
	var doubt models.Doubt
	if err := tx.First(&doubt, "id = ?", doubtID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if doubt.StudentID != studentID {
		return nil, ErrForbidden
	}
	return &doubt, nil
}

// creditTeacher reconciles points_awarded against the checkpoints that
// currently qualify and credits only the shortfall. This caps the award at 10
// per checkpoint across resubmissions and vote flips, and never claws back
// points already granted.
func creditTeacher(tx *gorm.DB, doubt *models.Doubt) error {
	if doubt.TeacherID == nil {
		return nil
	}

	delta := qualifyingPoints(doubt) - doubt.PointsAwarded
	if delta <= 0 {
		return nil
	}

	reason := fmt.Sprintf("Doubt Answered: %s", doubt.Topic)
	if err := AwardPoints(tx, *doubt.TeacherID, delta, reason); err != nil {
		return err
	}
	doubt.PointsAwarded += delta
	return nil
}

func qualifyingPoints(doubt *models.Doubt) int {
	points := 0
	if doubt.Upvoted && doubt.Rating != nil && *doubt.Rating >= 4 {
		points += pointsPerCheckpoint
	}
	if doubt.FinalUpvoted && doubt.FinalRating != nil && *doubt.FinalRating >= 4 {
		points += pointsPerCheckpoint
	}
	return points
}

type TeacherStats struct {
	TotalDoubtsAnswered int64   `json:"total_doubts_answered"`
	TotalPointsEarned   int     `json:"total_points_earned"`
	AverageRating       float64 `json:"average_rating"`
}

// GetTeacherStats aggregates a teacher's answered doubts, earned points and
// average final rating (unrated doubts excluded).
func GetTeacherStats(db *gorm.DB, teacherID uuid.UUID) (*TeacherStats, error) {
	var stats TeacherStats

	err := db.Model(&models.Doubt{}).
		Where("teacher_id = ? AND status IN ?", teacherID, []string{models.DoubtStatusAnswered, models.DoubtStatusResolved}).
		Count(&stats.TotalDoubtsAnswered).Error
	if err != nil {
		return nil, err
	}

	var totalPoints *int
	err = db.Model(&models.Doubt{}).
		Where("teacher_id = ? AND points_awarded > 0", teacherID).
		Select("sum(points_awarded)").
		Scan(&totalPoints).Error
	if err != nil {
		return nil, err
	}
	if totalPoints != nil {
		stats.TotalPointsEarned = *totalPoints
	}

	var avgRating *float64
	err = db.Model(&models.Doubt{}).
		Where("teacher_id = ? AND final_rating IS NOT NULL", teacherID).
		Select("avg(final_rating)").
		Scan(&avgRating).Error
	if err != nil {
		return nil, err
	}
	if avgRating != nil {
		stats.AverageRating = math.Round(*avgRating*10) / 10
	}

	return &stats, nil
}
