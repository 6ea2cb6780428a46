package controllers_fx

import (
	"go.uber.org/fx"

	"exodus/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewPlaidController),
	fx.Provide(controllers.NewBitcoinController),
)
