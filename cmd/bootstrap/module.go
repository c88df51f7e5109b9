package bootstrap

import (
	"repairs-scheduling-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DrsModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
