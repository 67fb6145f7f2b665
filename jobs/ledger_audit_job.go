package jobs

import (
	"log"

	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
)

// AuditPointsLedger compares each user's cached balance against the sum of
// their ledger rows. The balance is the source of truth and redemptions do
// not write negative ledger rows, so drift is expected; the job only reports
// balances that fall BELOW the earned total, which would mean points were
// granted without a matching transaction row.
func AuditPointsLedger() {
	log.Println("Running job: AuditPointsLedger...")

	type drift struct {
		UserID      string
		Points      int
		LedgerTotal int
	}

	var drifts []drift
	err := database.DB.Model(&models.User{}).
		Select("users.id as user_id, users.points as points, COALESCE(SUM(points_transactions.amount), 0) as ledger_total").
		Joins("LEFT JOIN points_transactions ON points_transactions.user_id = users.id").
		Group("users.id, users.points").
		Having("users.points > COALESCE(SUM(points_transactions.amount), 0)").
		Scan(&drifts).Error
	if err != nil {
		log.Printf("Error auditing points ledger: %v", err)
		return
	}

	if len(drifts) == 0 {
		log.Println("Points ledger audit clean.")
		return
	}

	for _, d := range drifts {
		log.Printf("⚠️ Ledger drift for user %s: balance=%d, ledger total=%d", d.UserID, d.Points, d.LedgerTotal)
	}
}
