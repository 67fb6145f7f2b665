package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DoubtStatusPending  = "pending"
	DoubtStatusAnswered = "answered"
	DoubtStatusResolved = "resolved"
)

type Doubt struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Topic     string    `gorm:"size:255;not null" json:"topic"`
	Question  string    `gorm:"type:text;not null" json:"question"`

	QuestionImage *string `gorm:"size:512" json:"question_image"`

	Status      string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	TeacherID   *uuid.UUID `gorm:"type:uuid;index" json:"teacher_id"`
	Answer      *string    `gorm:"type:text" json:"answer"`
	AnswerImage *string    `gorm:"size:512" json:"answer_image"`
	AnsweredAt  *time.Time `json:"answered_at"`

	Rating         *int    `json:"rating"`
	Upvoted        bool    `gorm:"default:false" json:"upvoted"`
	Downvoted      bool    `gorm:"default:false" json:"downvoted"`
	StudentComment *string `gorm:"type:text" json:"student_comment"`
	TeacherReply   *string `gorm:"type:text" json:"teacher_reply"`

	FinalRating  *int `json:"final_rating"`
	FinalUpvoted bool `gorm:"default:false" json:"final_upvoted"`

	PointsAwarded int `gorm:"default:0" json:"points_awarded"`

	Student User `gorm:"foreignkey:StudentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *Doubt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
