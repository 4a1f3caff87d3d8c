package database

import (
	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the primary relational store. The returned handle is
// passed explicitly to every service; there is no package-level singleton.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs auto-migration for every entity the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSetting{},
		&models.Subscription{},
		&models.UsageLog{},
		&models.ImageGeneration{},
		&models.TextGeneration{},
		&models.AudioProcessing{},
	)
}
