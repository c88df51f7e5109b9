package gateway

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
	"repairs-scheduling-api/internal/pkg/clock"
)

// DummyAppointmentsGateway serves canned availability for local development
// and demo environments; no DRS connection is made.
type DummyAppointmentsGateway struct {
	clock  clock.Clock
	logger *slog.Logger
}

func NewDummyAppointmentsGateway(clk clock.Clock, logger *slog.Logger) *DummyAppointmentsGateway {
	return &DummyAppointmentsGateway{clock: clk, logger: logger}
}

func (g *DummyAppointmentsGateway) GetAvailableAppointments(_ context.Context, query AvailabilityQuery) ([]appointment.Slot, error) {
	if err := requireNonBlank("sorCode", query.SorCode); err != nil {
		return nil, err
	}
	if err := requireNonBlank("locationId", query.LocationID); err != nil {
		return nil, err
	}

	base := clock.Today(g.clock)
	if query.FromDate != nil {
		d := *query.FromDate
		base = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}

	offsets := []struct {
		days      int
		startHour int
		endHour   int
	}{
		{16, 8, 12},
		{22, 12, 16},
		{14, 8, 12},
		{2, 8, 12},
		{10, 12, 16},
	}

	slots := make([]appointment.Slot, 0, len(offsets))
	for _, o := range offsets {
		day := base.AddDate(0, 0, o.days)
		slot, err := appointment.NewSlot(
			day.Add(time.Duration(o.startHour)*time.Hour),
			day.Add(time.Duration(o.endHour)*time.Hour),
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start().Before(slots[j].Start())
	})
	return slots, nil
}

func (g *DummyAppointmentsGateway) BookAppointment(_ context.Context, req BookingRequest) (string, error) {
	if err := requireNonBlank("bookingReference", req.BookingReference); err != nil {
		return "", err
	}
	g.logger.Info("dummy gateway accepted booking", "bookingReference", req.BookingReference)
	return req.BookingReference, nil
}
