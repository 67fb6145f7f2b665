package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QnASession stores the exact question set issued to the student so that
// submissions are graded against what was actually asked.
type QnASession struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Topic          string    `gorm:"size:255;not null" json:"topic"`
	Difficulty     string    `gorm:"size:20;not null;default:'medium'" json:"difficulty"`
	Questions      string    `gorm:"type:text;not null" json:"-"`
	CorrectAnswers int       `gorm:"default:0" json:"correct_answers"`
	PointsEarned   int       `gorm:"default:0" json:"points_earned"`
	Completed      bool      `gorm:"default:false" json:"completed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (QnASession) TableName() string {
	return "qna_sessions"
}

func (q *QnASession) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
