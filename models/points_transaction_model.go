package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsTransaction is an append-only ledger row. Rows are never updated or
// deleted after creation.
type PointsTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reason    string    `gorm:"size:255;not null" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *PointsTransaction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
