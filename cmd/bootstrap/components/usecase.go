package components

import (
	"repairs-scheduling-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAppointmentsUseCase,
	),
)
