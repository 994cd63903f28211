package database

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate создает схему БД. Для postgres включает uuid-ossp,
// чтобы работал default uuid_generate_v4().
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
			return err
		}
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
		&models.Favorite{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migration completed")
	return nil
}
