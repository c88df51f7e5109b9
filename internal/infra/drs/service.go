package drs

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/config"
	"repairs-scheduling-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	drsContract             = "H01"
	drsPriority             = "N"
	dummyPrimaryOrderNumber = "RepairsOnlineDummyPrimaryOrderNumber"
	dummyUserID             = "RepairsOnline"
	availableYes            = "YES"

	// Days ahead used as the target date when creating a new order.
	orderTargetLeadDays = 20

	// Backend phrase signalling an order that no longer exists in the DRS
	// web view. Backend-version dependent; isolated here on purpose.
	orderNotFoundPhrase = "Unable to find order in OptiTime Web"
)

// SelectDisposition tags the outcome of a selectOrder call.
type SelectDisposition int

const (
	// OrderSelected means a usable booking id was returned.
	OrderSelected SelectDisposition = iota
	// OrderArchivedSkipped means the order was not found but its validation
	// date lies beyond the retention horizon, so the failure is tolerated.
	OrderArchivedSkipped
	// OrderNotFoundSkipped means the backend reported the known not-found
	// phrase; tolerated with a warning.
	OrderNotFoundSkipped
)

type SelectOrderResult struct {
	Disposition SelectDisposition
	BookingID   int
}

// Service exposes the DRS operations the appointment gateway needs. All
// methods lazily open the backend session on first use; a failed login is
// remembered and never retried for the lifetime of the service.
type Service interface {
	CheckAvailability(ctx context.Context, sorCode, locationID string, earliestDate time.Time) ([]appointment.Slot, error)
	CreateOrder(ctx context.Context, bookingReference, sorCode, locationID string) (int, error)
	SelectOrder(ctx context.Context, workOrderID int, validationDate *time.Time) (*SelectOrderResult, error)
	ScheduleBooking(ctx context.Context, bookingReference string, bookingID int, startDateTime, endDateTime time.Time) error
}

type service struct {
	transport      Transport
	cfg            config.DrsConfig
	searchSpanDays int
	clock          clock.Clock
	logger         *slog.Logger

	mu           sync.Mutex
	sessionID    string
	sessionErr   error
	sessionTried bool
}

func NewService(transport Transport, cfg config.DrsConfig, searchSpanDays int, clk clock.Clock, logger *slog.Logger) Service {
	return &service{
		transport:      transport,
		cfg:            cfg,
		searchSpanDays: searchSpanDays,
		clock:          clk,
		logger:         logger,
	}
}

// ensureSession opens the backend session exactly once per process lifetime.
// Concurrent first callers serialize on the mutex so only one login exchange
// is ever issued; the outcome, success or failure, is reused afterwards.
func (s *service) ensureSession(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionTried {
		return s.sessionID, s.sessionErr
	}
	s.sessionTried = true

	resp, err := s.transport.OpenSession(ctx, OpenSessionRequest{
		Login:    s.cfg.Login,
		Password: s.cfg.Password,
	})
	if err != nil {
		s.sessionErr = errs.Wrap(err, "open session")
		return "", s.sessionErr
	}
	if resp.SessionID == "" {
		s.sessionErr = errs.Mark(errs.Newf("open session returned no session id: %s", resp.ErrorMsg), errs.ErrDrsRejection)
		return "", s.sessionErr
	}

	s.sessionID = resp.SessionID
	s.logger.Info("drs session opened")
	return s.sessionID, nil
}

func (s *service) CheckAvailability(ctx context.Context, sorCode, locationID string, earliestDate time.Time) ([]appointment.Slot, error) {
	sessionID, err := s.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.CheckAvailability(ctx, CheckAvailabilityRequest{
		SessionID:   sessionID,
		PeriodBegin: NewDateTime(earliestDate),
		PeriodEnd:   NewDateTime(earliestDate.AddDate(0, 0, s.searchSpanDays-1)),
		Order: OrderRequest{
			UserID:             dummyUserID,
			Contract:           drsContract,
			LocationID:         locationID,
			PrimaryOrderNumber: dummyPrimaryOrderNumber,
			Priority:           drsPriority,
			BookingCodes: []BookingCode{
				{
					SorCode:                 sorCode,
					ItemNumberWithinBooking: "1",
					PrimaryOrderNumber:      dummyPrimaryOrderNumber,
					Quantity:                "1",
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	slots := make([]appointment.Slot, 0)
	for _, day := range resp.Days {
		// Days without an interval list yield no slots, not an error.
		for _, interval := range day.SlotsForDay {
			if interval.Available != availableYes {
				continue
			}
			slot, slotErr := appointment.NewSlot(interval.BeginDate.Time, interval.EndDate.Time)
			if slotErr != nil {
				s.logger.Warn("drs returned a degenerate slot",
					"locationId", locationID,
					"begin", interval.BeginDate.Time,
					"end", interval.EndDate.Time)
				continue
			}
			slots = append(slots, slot)
		}
	}

	s.logger.Info("drs availability checked",
		"locationId", locationID,
		"periodBegin", earliestDate,
		"slots", len(slots))

	return slots, nil
}

func (s *service) CreateOrder(ctx context.Context, bookingReference, sorCode, locationID string) (int, error) {
	sessionID, err := s.ensureSession(ctx)
	if err != nil {
		return 0, err
	}

	targetDate := NewDateTime(clock.Today(s.clock).AddDate(0, 0, orderTargetLeadDays))
	resp, err := s.transport.CreateOrder(ctx, CreateOrderRequest{
		SessionID: sessionID,
		Order: OrderRequest{
			UserID:             dummyUserID,
			Contract:           drsContract,
			LocationID:         locationID,
			PrimaryOrderNumber: bookingReference,
			Priority:           drsPriority,
			OrderComments:      " ",
			TargetDate:         &targetDate,
			BookingCodes: []BookingCode{
				{
					SorCode:                 sorCode,
					ItemNumberWithinBooking: "1",
					PrimaryOrderNumber:      bookingReference,
					Quantity:                "1",
				},
			},
		},
	})
	if err != nil {
		return 0, err
	}

	if resp.Status != StatusSuccess {
		return 0, errs.Mark(errs.Newf("create order %s failed: %s", bookingReference, resp.ErrorMsg), errs.ErrDrsRejection)
	}
	if resp.Order == nil {
		return 0, errs.Mark(errs.Newf("create order %s returned no order", bookingReference), errs.ErrOrderMissing)
	}
	if len(resp.Order.Bookings) == 0 {
		return 0, errs.Mark(errs.Newf("order %s has no bookings", bookingReference), errs.ErrNoBookings)
	}
	bookingID := resp.Order.Bookings[0].BookingID
	if bookingID == 0 {
		return 0, errs.Mark(errs.Newf("order %s returned booking id 0", bookingReference), errs.ErrInvalidBookingID)
	}

	s.logger.Info("drs order created", "bookingReference", bookingReference, "bookingId", bookingID)
	return bookingID, nil
}

func (s *service) SelectOrder(ctx context.Context, workOrderID int, validationDate *time.Time) (*SelectOrderResult, error) {
	correlationID := uuid.New()
	logger := s.logger.With("workOrderId", workOrderID, "correlationId", correlationID)

	sessionID, err := s.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.SelectOrder(ctx, SelectOrderRequest{
		SessionID:           sessionID,
		PrimaryOrderNumbers: []string{strconv.Itoa(workOrderID)},
	})
	if err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		horizon := s.clock.Now().AddDate(0, 0, -s.cfg.OrderRetentionDays)
		switch {
		case validationDate != nil && validationDate.Before(horizon):
			logger.Warn("order not found but beyond retention horizon, ignoring", "errorMsg", resp.ErrorMsg)
			return &SelectOrderResult{Disposition: OrderArchivedSkipped}, nil
		case strings.Contains(resp.ErrorMsg, orderNotFoundPhrase):
			logger.Warn("order not found in drs", "errorMsg", resp.ErrorMsg)
			return &SelectOrderResult{Disposition: OrderNotFoundSkipped}, nil
		default:
			return nil, errs.Mark(errs.Newf("select order %d failed: %s", workOrderID, resp.ErrorMsg), errs.ErrDrsRejection)
		}
	}

	if len(resp.Orders) == 0 {
		return nil, errs.Mark(errs.Newf("select order %d returned no orders", workOrderID), errs.ErrOrderMissing)
	}
	order := resp.Orders[0]
	if len(order.Bookings) == 0 {
		return nil, errs.Mark(errs.Newf("order %d has no bookings", workOrderID), errs.ErrNoBookings)
	}
	bookingID := order.Bookings[0].BookingID
	if bookingID == 0 {
		return nil, errs.Mark(errs.Newf("order %d returned booking id 0", workOrderID), errs.ErrInvalidBookingID)
	}

	logger.Info("drs order selected", "bookingId", bookingID)
	return &SelectOrderResult{Disposition: OrderSelected, BookingID: bookingID}, nil
}

func (s *service) ScheduleBooking(ctx context.Context, bookingReference string, bookingID int, startDateTime, endDateTime time.Time) error {
	sessionID, err := s.ensureSession(ctx)
	if err != nil {
		return err
	}

	resp, err := s.transport.ScheduleBooking(ctx, ScheduleBookingRequest{
		SessionID: sessionID,
		Booking: AssignedBooking{
			BookingID:           bookingID,
			Contract:            drsContract,
			PrimaryOrderNumber:  bookingReference,
			PlanningWindowStart: NewDateTime(startDateTime),
			PlanningWindowEnd:   NewDateTime(endDateTime),
			AssignedStart:       NewDateTime(startDateTime),
			AssignedEnd:         NewDateTime(endDateTime),
		},
	})
	if err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		// DRS acks schedule requests even when parts of the window need
		// manual follow-up, so a non-success status is logged, not fatal.
		s.logger.Warn("drs schedule booking returned non-success status",
			"bookingReference", bookingReference,
			"status", resp.Status,
			"errorMsg", resp.ErrorMsg)
	}

	s.logger.Info("drs booking scheduled",
		"bookingReference", bookingReference,
		"bookingId", bookingID,
		"start", startDateTime,
		"end", endDateTime)
	return nil
}
