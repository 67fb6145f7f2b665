package utils

import (
	"math/rand"
	"time"

	"github.com/anjiri1684/edu_assist/models"
	"gorm.io/gorm"
)

const rewardCodeLength = 12
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueRewardCode produces a 12-character uppercase alphanumeric code
// not yet present in reward_codes. The column also carries a unique index, so
// a concurrent insert of the same code fails at the database rather than
// issuing a duplicate voucher.
func GenerateUniqueRewardCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, rewardCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var existing models.RewardCode
		err := tx.Where("code = ?", code).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
