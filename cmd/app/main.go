package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exodus/cmd/fx/auth_fx"
	"exodus/cmd/fx/bitcoin_fx"
	"exodus/cmd/fx/config_fx"
	"exodus/cmd/fx/controllers_fx"
	"exodus/cmd/fx/db_fx"
	"exodus/cmd/fx/logger_fx"
	"exodus/cmd/fx/plaid_fx"
	"exodus/internal/api/controllers"
	"exodus/internal/config"
	"exodus/internal/infra"
	"exodus/pkg/middleware"
	"exodus/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		plaid_fx.Module,
		bitcoin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	issuer *utils.TokenIssuer,
	authController *controllers.AuthController,
	plaidController *controllers.PlaidController,
	bitcoinController *controllers.BitcoinController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, issuer, authController, plaidController, bitcoinController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	issuer *utils.TokenIssuer,
	authController *controllers.AuthController,
	plaidController *controllers.PlaidController,
	bitcoinController *controllers.BitcoinController,
) {
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/logout", authController.Logout)
	authGroup.GET("/check", authController.Check)

	plaidGroup := api.Group("/plaid")
	plaidGroup.Use(middleware.JWTAuthMiddleware(issuer))
	plaidGroup.GET("/create_link_token", plaidController.CreateLinkToken)
	plaidGroup.POST("/exchange_public_token", plaidController.ExchangePublicToken)
	plaidGroup.POST("/link_accounts", plaidController.LinkAccounts)
	plaidGroup.GET("/get_accounts", plaidController.GetAccounts)
	plaidGroup.POST("/get_balance", plaidController.GetBalance)

	bitcoinGroup := api.Group("/bitcoin")
	bitcoinGroup.Use(middleware.JWTAuthMiddleware(issuer))
	bitcoinGroup.GET("/balance", bitcoinController.GetBalance)
	bitcoinGroup.POST("/purchase", bitcoinController.Purchase)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}
