// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carbontrack-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.CarbonRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Composite index for the range queries on the ledger.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_carbon_records_user_date ON carbon_records(user_id, record_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for carbon_records: %v\n", err)
	}

	return nil
}
