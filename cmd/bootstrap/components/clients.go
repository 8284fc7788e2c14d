package components

import (
	"log/slog"

	"reservation-gateway/internal/infra/backendgw"
	"reservation-gateway/internal/infra/mailer"
	"reservation-gateway/internal/infra/riskverify"
	"reservation-gateway/internal/pkg/config"
	"reservation-gateway/internal/usecase/commands"

	"go.uber.org/fx"
)

// ClientsModule wires the external collaborators: the transactional backend,
// the risk-scoring endpoint and the SMTP dispatcher.
var ClientsModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *backendgw.Client {
				return backendgw.NewClient(cfg.Backend)
			},
			fx.As(new(commands.BackendGateway)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *riskverify.Client {
				return riskverify.NewClient(cfg.Verify, logger)
			},
			fx.As(new(commands.RiskVerifier)),
		),
		func(cfg config.Config, logger *slog.Logger) *mailer.Mailer {
			return mailer.NewMailer(cfg.Mail, logger)
		},
		fx.Annotate(
			mailer.NewDispatcher,
			fx.As(new(commands.NotificationDispatcher)),
		),
	),
)
