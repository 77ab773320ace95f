package db

import (
	"invoice-service-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. TranslateError is on
// so unique-index violations surface as gorm.ErrDuplicatedKey instead of
// driver-specific errors.
func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.MutationAuditLog{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
