package components

import (
	"reservation-gateway/internal/pkg/clock"
	"reservation-gateway/internal/pkg/config"
	"reservation-gateway/internal/pkg/phone"
	"reservation-gateway/internal/usecase"
	"reservation-gateway/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewSystemClock,
		func(cfg config.Config) *phone.Normalizer {
			return phone.NewNormalizer(cfg.Phone.DefaultRegion)
		},
		func(
			backend commands.BackendGateway,
			verifier commands.RiskVerifier,
			dispatcher commands.NotificationDispatcher,
			normalizer *phone.Normalizer,
			cfg config.Config,
			clk clock.Clock,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(
				backend, verifier, dispatcher, normalizer,
				cfg.Verify.RequireToken, clk,
			)
		},
		usecase.NewTokenValidator,
	),
)
