package gateway

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
	"repairs-scheduling-api/internal/infra/drs"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/config"
	"repairs-scheduling-api/internal/pkg/errs"
)

// How far back an order's validation date is set when selecting an existing
// work order. The backend uses it to decide whether a missing order should
// be treated as archived.
const orderValidationWindowDays = 30

// DrsAppointmentsGateway drives the day-window availability search and the
// booking flow against the DRS backend.
type DrsAppointmentsGateway struct {
	drs    drs.Service
	clock  clock.Clock
	logger *slog.Logger

	requiredDays   int
	searchSpanDays int
	leadTimeDays   int
	maxFetches     int
	orderMode      string
}

func NewDrsAppointmentsGateway(
	drsService drs.Service,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *DrsAppointmentsGateway {
	return &DrsAppointmentsGateway{
		drs:            drsService,
		clock:          clk,
		logger:         logger,
		requiredDays:   cfg.Appointments.RequiredDays,
		searchSpanDays: cfg.Appointments.SearchSpanDays,
		leadTimeDays:   cfg.Appointments.LeadTimeDays,
		maxFetches:     cfg.Appointments.MaxSearchFetches,
		orderMode:      cfg.Drs.OrderMode,
	}
}

// GetAvailableAppointments widens the searched period one window at a time
// until enough distinct days of availability are collected or the request
// budget runs out. Termination is count-based: a window that overshoots the
// required day count still stops the loop and the overshoot is trimmed.
func (g *DrsAppointmentsGateway) GetAvailableAppointments(ctx context.Context, query AvailabilityQuery) ([]appointment.Slot, error) {
	if err := requireNonBlank("sorCode", query.SorCode); err != nil {
		return nil, err
	}
	if err := requireNonBlank("locationId", query.LocationID); err != nil {
		return nil, err
	}

	g.logger.Info("searching available appointments", "locationId", query.LocationID)

	earliestDate := clock.Today(g.clock).AddDate(0, 0, g.leadTimeDays)
	if query.FromDate != nil {
		earliestDate = *query.FromDate
	}

	var collected []appointment.Slot
	fetches := 0
	for fetches < g.maxFetches && appointment.DistinctDays(collected) < g.requiredDays {
		fetches++
		slots, err := g.fetchBookableSlots(ctx, query.SorCode, query.LocationID, earliestDate)
		if err != nil {
			return nil, err
		}
		collected = append(collected, slots...)
		earliestDate = earliestDate.AddDate(0, 0, g.searchSpanDays)
	}

	result := appointment.FirstDays(collected, g.requiredDays)

	g.logger.Info("available appointments search finished",
		"locationId", query.LocationID,
		"fetches", fetches,
		"slots", len(result))

	return result, nil
}

// fetchBookableSlots runs one availability window and drops the blanket
// placeholder intervals DRS injects on days it cannot genuinely serve.
func (g *DrsAppointmentsGateway) fetchBookableSlots(ctx context.Context, sorCode, locationID string, earliestDate time.Time) ([]appointment.Slot, error) {
	slots, err := g.drs.CheckAvailability(ctx, sorCode, locationID, earliestDate)
	if err != nil {
		return nil, err
	}

	bookable := make([]appointment.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsPlaceholder() {
			continue
		}
		bookable = append(bookable, slot)
	}
	return bookable, nil
}

func (g *DrsAppointmentsGateway) BookAppointment(ctx context.Context, req BookingRequest) (string, error) {
	if err := requireNonBlank("bookingReference", req.BookingReference); err != nil {
		return "", err
	}
	if err := requireNonBlank("sorCode", req.SorCode); err != nil {
		return "", err
	}
	if err := requireNonBlank("locationId", req.LocationID); err != nil {
		return "", err
	}
	if req.EndDateTime.Before(req.StartDateTime) {
		return "", errs.Mark(errs.New("endDateTime must not be before startDateTime"), errs.ErrOutOfRange)
	}

	g.logger.Info("booking appointment", "locationId", req.LocationID, "bookingReference", req.BookingReference)

	if g.orderMode == "select" {
		return g.bookExistingOrder(ctx, req)
	}
	return g.bookNewOrder(ctx, req)
}

func (g *DrsAppointmentsGateway) bookNewOrder(ctx context.Context, req BookingRequest) (string, error) {
	bookingID, err := g.drs.CreateOrder(ctx, req.BookingReference, req.SorCode, req.LocationID)
	if err != nil {
		return "", err
	}
	if err := g.scheduleWindow(ctx, req, bookingID); err != nil {
		return "", err
	}
	return req.BookingReference, nil
}

func (g *DrsAppointmentsGateway) bookExistingOrder(ctx context.Context, req BookingRequest) (string, error) {
	// In select mode the booking reference is DRS's own work order id.
	workOrderID, err := strconv.Atoi(strings.TrimSpace(req.BookingReference))
	if err != nil {
		return "", errs.Mark(errs.Newf("bookingReference %q is not a work order id", req.BookingReference), errs.ErrInvalidArgument)
	}

	validationDate := g.clock.Now().AddDate(0, 0, -orderValidationWindowDays)
	result, err := g.drs.SelectOrder(ctx, workOrderID, &validationDate)
	if err != nil {
		return "", err
	}
	if result.Disposition != drs.OrderSelected {
		g.logger.Warn("order unavailable for scheduling, skipping booking step",
			"workOrderId", workOrderID,
			"disposition", int(result.Disposition))
		return req.BookingReference, nil
	}

	if err := g.scheduleWindow(ctx, req, result.BookingID); err != nil {
		return "", err
	}
	return req.BookingReference, nil
}

func (g *DrsAppointmentsGateway) scheduleWindow(ctx context.Context, req BookingRequest, bookingID int) error {
	start := drs.ConvertToDrsTimeZone(req.StartDateTime)
	end := drs.ConvertToDrsTimeZone(req.EndDateTime)
	return g.drs.ScheduleBooking(ctx, req.BookingReference, bookingID, start, end)
}

func requireNonBlank(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Mark(errs.Newf("%s must not be blank", name), errs.ErrInvalidArgument)
	}
	return nil
}
