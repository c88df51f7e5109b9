package components

import (
	"repairs-scheduling-api/internal/handler"
	"repairs-scheduling-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
