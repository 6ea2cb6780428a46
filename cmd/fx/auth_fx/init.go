package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exodus/internal/config"
	"exodus/internal/infra"
	"exodus/internal/repositories"
	"exodus/internal/services"
	"exodus/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo,
	provideTokenIssuer,
	provideAuthService,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	node infra.NodeRPC,
	issuer *utils.TokenIssuer,
	logger *zap.Logger,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, node, issuer, logger)
}
