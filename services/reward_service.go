package services

import (
	"strings"

	"github.com/anjiri1684/edu_assist/models"
	"github.com/anjiri1684/edu_assist/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const rewardCost = 50

type RedemptionResult struct {
	Code           string `json:"reward_code"`
	NewPointsTotal int    `json:"new_points_total"`
}

// RedeemPoints debits a fixed 50 points and issues a unique reward code. The
// debit is a single conditional UPDATE, so two concurrent redemptions can
// never push a balance below zero; either everything commits or nothing does.
func RedeemPoints(db *gorm.DB, userID uuid.UUID, rewardType string) (*RedemptionResult, error) {
	if strings.TrimSpace(rewardType) == "" {
		return nil, ErrInvalidInput
	}

	var result RedemptionResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		debit := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", userID, rewardCost).
			Update("points", gorm.Expr("points - ?", rewardCost))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		code, err := utils.GenerateUniqueRewardCode(tx)
		if err != nil {
			return err
		}

		rewardCode := models.RewardCode{
			UserID:      userID,
			Code:        code,
			RewardType:  strings.TrimSpace(rewardType),
			PointsSpent: rewardCost,
		}
		if err := tx.Create(&rewardCode).Error; err != nil {
			return err
		}

		result.Code = code
		result.NewPointsTotal = user.Points - rewardCost
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRewardHistory returns a user's issued reward codes newest-first.
func GetRewardHistory(db *gorm.DB, userID uuid.UUID) ([]models.RewardCode, error) {
	var codes []models.RewardCode
	err := db.Where("user_id = ?", userID).
		Order("redeemed_at desc").
		Find(&codes).Error
	return codes, err
}
