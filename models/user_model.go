package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	Grade      *string `gorm:"size:50" json:"grade"`
	Subject    *string `gorm:"size:100" json:"subject"`
	Experience int     `gorm:"default:0" json:"experience"`
	Level      string  `gorm:"size:50;default:'Beginner'" json:"level"`

	Points      int `gorm:"default:0" json:"points"`
	DoubtsAsked int `gorm:"default:0" json:"doubts_asked"`
	QnASessions int `gorm:"column:qna_sessions;default:0" json:"qna_sessions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
