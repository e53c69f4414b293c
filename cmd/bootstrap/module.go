package bootstrap

import (
	"auction-sync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	LedgerModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
