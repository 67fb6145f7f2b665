package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearningTopic struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Topic        string    `gorm:"size:255;not null" json:"topic"`
	Description  *string   `gorm:"type:text" json:"description"`
	VideoURL     *string   `gorm:"size:512" json:"video_url"`
	VideoTitle   *string   `gorm:"size:255" json:"video_title"`
	Completed    bool      `gorm:"default:false" json:"completed"`
	PointsEarned int       `gorm:"default:0" json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

func (l *LearningTopic) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
