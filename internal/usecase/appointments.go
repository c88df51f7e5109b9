package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
	"repairs-scheduling-api/internal/infra/gateway"
	"repairs-scheduling-api/internal/pkg/errs"
)

type BookAppointmentParams struct {
	BookingReference string
	SorCode          string
	LocationID       string
	StartDateTime    time.Time
	EndDateTime      time.Time
}

type AppointmentsUseCase interface {
	RetrieveAvailableAppointments(ctx context.Context, sorCode, locationID string, fromDate *time.Time) ([]appointment.Slot, error)
	BookAppointment(ctx context.Context, params BookAppointmentParams) (string, error)
}

type appointmentsUseCaseImpl struct {
	gateway gateway.AppointmentsGateway
	logger  *slog.Logger
}

func NewAppointmentsUseCase(gw gateway.AppointmentsGateway, logger *slog.Logger) AppointmentsUseCase {
	return &appointmentsUseCaseImpl{
		gateway: gw,
		logger:  logger,
	}
}

func (u *appointmentsUseCaseImpl) RetrieveAvailableAppointments(ctx context.Context, sorCode, locationID string, fromDate *time.Time) ([]appointment.Slot, error) {
	if err := validateNonBlank("sorCode", sorCode); err != nil {
		return nil, err
	}
	if err := validateNonBlank("locationId", locationID); err != nil {
		return nil, err
	}

	slots, err := u.gateway.GetAvailableAppointments(ctx, gateway.AvailabilityQuery{
		SorCode:    sorCode,
		LocationID: locationID,
		FromDate:   fromDate,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("retrieved available appointments", "locationId", locationID, "slots", len(slots))
	return slots, nil
}

func (u *appointmentsUseCaseImpl) BookAppointment(ctx context.Context, params BookAppointmentParams) (string, error) {
	if err := validateNonBlank("bookingReference", params.BookingReference); err != nil {
		return "", err
	}
	if err := validateNonBlank("sorCode", params.SorCode); err != nil {
		return "", err
	}
	if err := validateNonBlank("locationId", params.LocationID); err != nil {
		return "", err
	}
	if params.EndDateTime.Before(params.StartDateTime) {
		return "", errs.Mark(errs.New("endDateTime must not be before startDateTime"), errs.ErrOutOfRange)
	}

	return u.gateway.BookAppointment(ctx, gateway.BookingRequest{
		BookingReference: params.BookingReference,
		SorCode:          params.SorCode,
		LocationID:       params.LocationID,
		StartDateTime:    params.StartDateTime,
		EndDateTime:      params.EndDateTime,
	})
}

func validateNonBlank(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Mark(errs.Newf("%s must not be blank", name), errs.ErrInvalidArgument)
	}
	return nil
}
