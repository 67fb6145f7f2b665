package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardCode struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Code        string    `gorm:"size:12;not null;uniqueIndex" json:"code"`
	RewardType  string    `gorm:"size:100;not null" json:"reward_type"`
	PointsSpent int       `gorm:"not null;default:50" json:"points_spent"`
	RedeemedAt  time.Time `gorm:"autoCreateTime" json:"redeemed_at"`
}

func (r *RewardCode) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
