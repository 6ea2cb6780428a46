package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"exodus/internal/config"
	"exodus/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	return infra.InitPostgresql(cfg.Database)
}
