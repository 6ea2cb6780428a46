package config_fx

import (
	"go.uber.org/fx"

	"exodus/internal/config"
)

var Module = fx.Provide(config.Load)
