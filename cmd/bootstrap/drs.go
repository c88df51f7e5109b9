package bootstrap

import (
	"log/slog"

	"repairs-scheduling-api/internal/infra/drs"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/config"

	"go.uber.org/fx"
)

var DrsModule = fx.Module("drs",
	fx.Provide(
		fx.Annotate(
			NewDrsClient,
			fx.As(new(drs.Transport)),
		),
		NewDrsService,
	),
)

func NewDrsClient(cfg config.Config, logger *slog.Logger) *drs.Client {
	return drs.NewClient(cfg.Drs, logger)
}

func NewDrsService(transport drs.Transport, cfg config.Config, clk clock.Clock, logger *slog.Logger) drs.Service {
	return drs.NewService(transport, cfg.Drs, cfg.Appointments.SearchSpanDays, clk, logger)
}
