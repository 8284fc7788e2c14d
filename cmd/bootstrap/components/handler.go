package components

import (
	"reservation-gateway/internal/handler"
	"reservation-gateway/internal/handler/api"
	"reservation-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
