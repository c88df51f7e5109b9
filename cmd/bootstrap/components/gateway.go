package components

import (
	"log/slog"

	"repairs-scheduling-api/internal/infra/drs"
	"repairs-scheduling-api/internal/infra/gateway"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		clock.NewRealClock,
		NewAppointmentsGateway,
	),
)

func NewAppointmentsGateway(cfg config.Config, drsService drs.Service, clk clock.Clock, logger *slog.Logger) gateway.AppointmentsGateway {
	if cfg.Appointments.GatewayMode == "dummy" {
		return gateway.NewDummyAppointmentsGateway(clk, logger)
	}
	return gateway.NewDrsAppointmentsGateway(drsService, cfg, clk, logger)
}
