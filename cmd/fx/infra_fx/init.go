package infra_fx

import (
	"go.uber.org/fx"

	"gujtrip/internal/infra"
)

var Module = fx.Provide(
	infra.InitLogger,
	infra.InitPostgresql,
	infra.InitRedis,
)
