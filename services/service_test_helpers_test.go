package services

import (
	"fmt"
	"testing"

	"github.com/anjiri1684/edu_assist/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.LearningTopic{},
		&models.Doubt{},
		&models.QnASession{},
		&models.PointsTransaction{},
		&models.RewardCode{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role string, points int) *models.User {
	t.Helper()

	user := models.User{
		Name:     fmt.Sprintf("Test %s", role),
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "hashed",
		Role:     role,
		Points:   points,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func userPoints(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return user.Points
}
