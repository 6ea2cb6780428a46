package bitcoin_fx

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
	provideNode,
	providePurchaseRepo,
	provideBitcoinService,
)

func provideNode(cfg *config.Config) (infra.NodeRPC, error) {
	return infra.NewBitcoinNode(cfg.Bitcoin)
}

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func provideBitcoinService(
	node infra.NodeRPC,
	userRepo repositories.UserRepository,
	purchaseRepo repositories.PurchaseRepository,
	plaidService services.PlaidServiceInterface,
	logger *zap.Logger,
) services.BitcoinServiceInterface {
	return services.NewBitcoinService(node, userRepo, purchaseRepo, plaidService, logger)
}
