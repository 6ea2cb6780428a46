package plaid_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exodus/internal/config"
	"exodus/internal/infra"
	"exodus/internal/repositories"
	"exodus/internal/services"
)

var Module = fx.Provide(
	provideBankAPI,
	provideAccountRepo,
	providePlaidService,
)

func provideBankAPI(cfg *config.Config) infra.BankAPI {
	return infra.NewPlaidBank(cfg.Plaid)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func providePlaidService(
	bank infra.BankAPI,
	userRepo repositories.UserRepository,
	accountRepo repositories.AccountRepository,
	logger *zap.Logger,
) services.PlaidServiceInterface {
	return services.NewPlaidService(bank, userRepo, accountRepo, logger)
}
