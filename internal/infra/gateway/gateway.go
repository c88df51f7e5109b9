package gateway

import (
	"context"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
)

type AvailabilityQuery struct {
	SorCode    string
	LocationID string
	FromDate   *time.Time
}

type BookingRequest struct {
	BookingReference string
	SorCode          string
	LocationID       string
	StartDateTime    time.Time
	EndDateTime      time.Time
}

// AppointmentsGateway answers availability searches and books appointments.
// Implementations: the DRS-backed gateway and a deterministic dummy for
// local development.
type AppointmentsGateway interface {
	GetAvailableAppointments(ctx context.Context, query AvailabilityQuery) ([]appointment.Slot, error)
	BookAppointment(ctx context.Context, req BookingRequest) (string, error)
}
