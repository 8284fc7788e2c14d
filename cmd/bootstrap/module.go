package bootstrap

import (
	"reservation-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.ClientsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
