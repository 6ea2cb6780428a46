package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"exodus/internal/config"
	"exodus/internal/models/db_models"
)

func InitPostgresql(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate keeps the two persisted tables plus the purchase ledger in
// sync with the models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Account{},
		&db_models.Purchase{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
		return
	}
	logger.Info("database connection closed")
}
