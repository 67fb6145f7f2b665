package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/edu_assist/configs"
	"github.com/anjiri1684/edu_assist/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error

	if config.Config("DB_DRIVER") == "sqlite" {
		path := config.Config("SQLITE_PATH")
		if path == "" {
			path = "edu_assist.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		dsn := config.Config("DATABASE_URL")
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt:                              false,
			SkipDefaultTransaction:                   true,
			DisableForeignKeyConstraintWhenMigrating: true,
		})
	}
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.LearningTopic{},
		&models.Doubt{},
		&models.QnASession{},
		&models.PointsTransaction{},
		&models.RewardCode{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
