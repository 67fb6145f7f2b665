package services

import (
	"strings"
	"time"

	"github.com/anjiri1684/edu_assist/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AwardPoints credits (or debits, with a negative amount) a user's balance and
// appends the matching ledger row. The balance update is a single expression
// UPDATE so concurrent awards cannot lose increments.
func AwardPoints(db *gorm.DB, userID uuid.UUID, amount int, reason string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		transaction := models.PointsTransaction{
			UserID: userID,
			Amount: amount,
			Reason: reason,
		}
		return tx.Create(&transaction).Error
	})
}

type FormattedTransaction struct {
	Reason    string    `json:"reason"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
}

// GetPointsHistory returns a user's ledger newest-first, tagged earned/spent
// by sign with a display icon derived from the reason text.
func GetPointsHistory(db *gorm.DB, userID uuid.UUID) ([]FormattedTransaction, error) {
	var transactions []models.PointsTransaction
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	formatted := make([]FormattedTransaction, 0, len(transactions))
	for _, t := range transactions {
		txType := "earned"
		if t.Amount <= 0 {
			txType = "spent"
		}
		formatted = append(formatted, FormattedTransaction{
			Reason:    t.Reason,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
			Type:      txType,
			Icon:      PointsIcon(t.Reason),
		})
	}
	return formatted, nil
}

// PointsIcon maps a transaction reason to a display icon class.
func PointsIcon(reason string) string {
	switch {
	case strings.Contains(reason, "QnA"):
		return "fas fa-vial"
	case strings.Contains(reason, "Dobby"):
		return "fas fa-robot"
	case strings.Contains(reason, "Flashcard"):
		return "fas fa-clone"
	case strings.Contains(reason, "Doubt"):
		return "fas fa-question-circle"
	default:
		return "fas fa-star"
	}
}
