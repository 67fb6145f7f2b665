package jobs

import (
	"log"
	"time"

	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/models"
)

// ReportStaleDoubts logs doubts that have been sitting unanswered for more
// than 24 hours so teachers can be nudged.
func ReportStaleDoubts() {
	log.Println("Running job: ReportStaleDoubts...")

	cutoff := time.Now().Add(-24 * time.Hour)

	var count int64
	err := database.DB.Model(&models.Doubt{}).
		Where("status = ? AND created_at < ?", models.DoubtStatusPending, cutoff).
		Count(&count).Error
	if err != nil {
		log.Printf("Error checking for stale doubts: %v", err)
		return
	}

	if count == 0 {
		log.Println("No stale pending doubts.")
		return
	}

	log.Printf("⚠️ %d doubt(s) pending for more than 24 hours.", count)
}
