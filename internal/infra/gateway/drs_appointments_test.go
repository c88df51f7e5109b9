//go:build unit

package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
	"repairs-scheduling-api/internal/infra/drs"
	"repairs-scheduling-api/internal/infra/gateway"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/config"
	"repairs-scheduling-api/internal/pkg/errs"
	drsmock "repairs-scheduling-api/tests/mock/drs"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrsGatewaySuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	drsMock *drsmock.MockService
	clk     *clock.MockClock
}

func (s *DrsGatewaySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.drsMock = drsmock.NewMockService(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2022, 5, 1, 10, 30, 0, 0, time.UTC))
}

func TestDrsGatewaySuite(t *testing.T) {
	suite.Run(t, new(DrsGatewaySuite))
}

func (s *DrsGatewaySuite) newGateway(orderMode string) *gateway.DrsAppointmentsGateway {
	cfg := config.Config{
		Drs: config.DrsConfig{
			OrderMode:          orderMode,
			OrderRetentionDays: 90,
		},
		Appointments: config.AppointmentsConfig{
			RequiredDays:     5,
			SearchSpanDays:   14,
			LeadTimeDays:     7,
			MaxSearchFetches: 10,
		},
	}
	return gateway.NewDrsAppointmentsGateway(s.drsMock, cfg, s.clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *DrsGatewaySuite) slot(day, startHour, endHour int) appointment.Slot {
	base := time.Date(2022, 5, day, 0, 0, 0, 0, time.UTC)
	slot, err := appointment.NewSlot(base.Add(time.Duration(startHour)*time.Hour), base.Add(time.Duration(endHour)*time.Hour))
	s.Require().NoError(err)
	return slot
}

func (s *DrsGatewaySuite) placeholderSlot(day int) appointment.Slot {
	base := time.Date(2022, 5, day, 0, 0, 0, 0, time.UTC)
	slot, err := appointment.NewSlot(
		base.Add(9*time.Hour+30*time.Minute),
		base.Add(14*time.Hour+30*time.Minute),
	)
	s.Require().NoError(err)
	return slot
}

func (s *DrsGatewaySuite) TestSearchStopsAfterFirstSufficientWindow() {
	g := s.newGateway("create")

	slots := []appointment.Slot{
		s.slot(10, 8, 12), s.slot(11, 8, 12), s.slot(12, 8, 12),
		s.slot(13, 8, 12), s.slot(14, 8, 12),
	}
	// Lead time of 7 days from midnight 2022-05-01.
	wantEarliest := time.Date(2022, 5, 8, 0, 0, 0, 0, time.UTC)

	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, earliest time.Time) ([]appointment.Slot, error) {
			s.Assert().True(earliest.Equal(wantEarliest))
			return slots, nil
		}).
		Times(1)

	got, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	s.Require().NoError(err)
	s.Assert().Len(got, 5)
}

func (s *DrsGatewaySuite) TestSearchWidensWindowUntilEnoughDays() {
	g := s.newGateway("create")

	firstWindow := []appointment.Slot{s.slot(10, 8, 12), s.slot(11, 8, 12), s.slot(12, 8, 12)}
	secondWindow := []appointment.Slot{s.slot(24, 8, 12), s.slot(25, 8, 12)}

	var earliests []time.Time
	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, earliest time.Time) ([]appointment.Slot, error) {
			earliests = append(earliests, earliest)
			if len(earliests) == 1 {
				return firstWindow, nil
			}
			return secondWindow, nil
		}).
		Times(2)

	got, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	s.Require().NoError(err)
	s.Assert().Len(got, 5)

	// Each retry advances the window start by the full search span.
	s.Require().Len(earliests, 2)
	s.Assert().True(earliests[1].Equal(earliests[0].AddDate(0, 0, 14)))
}

func (s *DrsGatewaySuite) TestSearchStopsAtRequestBudget() {
	g := s.newGateway("create")

	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		Return([]appointment.Slot{}, nil).
		Times(10)

	got, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func (s *DrsGatewaySuite) TestSearchTrimsOvershootDays() {
	g := s.newGateway("create")

	slots := []appointment.Slot{
		s.slot(10, 8, 12), s.slot(11, 8, 12), s.slot(12, 8, 12),
		s.slot(13, 8, 12), s.slot(14, 8, 12), s.slot(15, 8, 12),
		s.slot(16, 8, 12),
		// A second slot on a kept day must survive the trim.
		s.slot(10, 12, 16),
	}

	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		Return(slots, nil).
		Times(1)

	got, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	s.Require().NoError(err)
	s.Assert().Equal(5, appointment.DistinctDays(got))
	s.Assert().Len(got, 6)
	for _, slot := range got {
		s.Assert().LessOrEqual(slot.Day(), "2022-05-14")
	}
}

func (s *DrsGatewaySuite) TestSearchFiltersPlaceholderSlots() {
	g := s.newGateway("create")

	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		Return([]appointment.Slot{s.placeholderSlot(10), s.slot(10, 8, 12)}, nil).
		Times(10)

	got, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	s.Require().NoError(err)
	for _, slot := range got {
		s.Assert().False(slot.IsPlaceholder())
	}
}

func (s *DrsGatewaySuite) TestSearchHonoursFromDate() {
	g := s.newGateway("create")

	fromDate := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	s.drsMock.EXPECT().
		CheckAvailability(gomock.Any(), "SOR1", "LOC1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, earliest time.Time) ([]appointment.Slot, error) {
			s.Assert().True(earliest.Equal(fromDate))
			return []appointment.Slot{
				s.slot(10, 8, 12), s.slot(11, 8, 12), s.slot(12, 8, 12),
				s.slot(13, 8, 12), s.slot(14, 8, 12),
			}, nil
		}).
		Times(1)

	_, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1", FromDate: &fromDate})
	s.Require().NoError(err)
}

func (s *DrsGatewaySuite) TestSearchRejectsBlankIdentifiers() {
	g := s.newGateway("create")

	cases := []struct {
		name  string
		query gateway.AvailabilityQuery
	}{
		{"blank sor code", gateway.AvailabilityQuery{SorCode: "  ", LocationID: "LOC1"}},
		{"blank location id", gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: ""}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := g.GetAvailableAppointments(context.Background(), tc.query)
			s.Require().Error(err)
			s.Assert().ErrorIs(err, errs.ErrInvalidArgument)
		})
	}
}

func (s *DrsGatewaySuite) TestBookNewOrderSchedulesInLondonTime() {
	g := s.newGateway("create")

	start := time.Date(2022, 5, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2022, 5, 10, 12, 0, 0, 0, time.UTC)

	s.drsMock.EXPECT().
		CreateOrder(gomock.Any(), "REF1", "SOR1", "LOC1").
		Return(42, nil)

	var gotStart, gotEnd time.Time
	s.drsMock.EXPECT().
		ScheduleBooking(gomock.Any(), "REF1", 42, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int, startAt, endAt time.Time) error {
			gotStart, gotEnd = startAt, endAt
			return nil
		})

	ref, err := g.BookAppointment(context.Background(), gateway.BookingRequest{
		BookingReference: "REF1",
		SorCode:          "SOR1",
		LocationID:       "LOC1",
		StartDateTime:    start,
		EndDateTime:      end,
	})
	s.Require().NoError(err)
	s.Assert().Equal("REF1", ref)

	// May dates are under BST, so the wall clock shifts one hour ahead.
	s.Assert().True(gotStart.Equal(start))
	s.Assert().Equal("09:00", gotStart.Format("15:04"))
	s.Assert().True(gotEnd.Equal(end))
	s.Assert().Equal("13:00", gotEnd.Format("15:04"))
}

func (s *DrsGatewaySuite) TestBookExistingOrderScheduled() {
	g := s.newGateway("select")

	start := time.Date(2022, 5, 10, 8, 0, 0, 0, time.UTC)

	var gotValidation *time.Time
	s.drsMock.EXPECT().
		SelectOrder(gomock.Any(), 12345, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, validationDate *time.Time) (*drs.SelectOrderResult, error) {
			gotValidation = validationDate
			return &drs.SelectOrderResult{Disposition: drs.OrderSelected, BookingID: 7}, nil
		})
	s.drsMock.EXPECT().
		ScheduleBooking(gomock.Any(), "12345", 7, gomock.Any(), gomock.Any()).
		Return(nil)

	ref, err := g.BookAppointment(context.Background(), gateway.BookingRequest{
		BookingReference: "12345",
		SorCode:          "SOR1",
		LocationID:       "LOC1",
		StartDateTime:    start,
		EndDateTime:      start.Add(4 * time.Hour),
	})
	s.Require().NoError(err)
	s.Assert().Equal("12345", ref)

	s.Require().NotNil(gotValidation)
	s.Assert().True(gotValidation.Equal(s.clk.Now().AddDate(0, 0, -30)))
}

func (s *DrsGatewaySuite) TestBookExistingOrderSkipsWhenOrderUnavailable() {
	for _, disposition := range []drs.SelectDisposition{drs.OrderArchivedSkipped, drs.OrderNotFoundSkipped} {
		s.SetupTest()
		g := s.newGateway("select")

		s.drsMock.EXPECT().
			SelectOrder(gomock.Any(), 12345, gomock.Any()).
			Return(&drs.SelectOrderResult{Disposition: disposition}, nil)

		start := time.Date(2022, 5, 10, 8, 0, 0, 0, time.UTC)
		ref, err := g.BookAppointment(context.Background(), gateway.BookingRequest{
			BookingReference: "12345",
			SorCode:          "SOR1",
			LocationID:       "LOC1",
			StartDateTime:    start,
			EndDateTime:      start.Add(4 * time.Hour),
		})
		s.Require().NoError(err)
		s.Assert().Equal("12345", ref)
	}
}

func (s *DrsGatewaySuite) TestBookExistingOrderRejectsNonNumericReference() {
	g := s.newGateway("select")

	start := time.Date(2022, 5, 10, 8, 0, 0, 0, time.UTC)
	_, err := g.BookAppointment(context.Background(), gateway.BookingRequest{
		BookingReference: "REF1",
		SorCode:          "SOR1",
		LocationID:       "LOC1",
		StartDateTime:    start,
		EndDateTime:      start.Add(4 * time.Hour),
	})
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrInvalidArgument)
}

func (s *DrsGatewaySuite) TestBookRejectsInvalidWindow() {
	g := s.newGateway("create")

	start := time.Date(2022, 5, 10, 12, 0, 0, 0, time.UTC)
	_, err := g.BookAppointment(context.Background(), gateway.BookingRequest{
		BookingReference: "REF1",
		SorCode:          "SOR1",
		LocationID:       "LOC1",
		StartDateTime:    start,
		EndDateTime:      start.Add(-time.Hour),
	})
	s.Require().Error(err)
	s.Assert().ErrorIs(err, errs.ErrOutOfRange)
}

func (s *DrsGatewaySuite) TestBookRejectsBlankFields() {
	g := s.newGateway("create")

	start := time.Date(2022, 5, 10, 8, 0, 0, 0, time.UTC)
	base := gateway.BookingRequest{
		BookingReference: "REF1",
		SorCode:          "SOR1",
		LocationID:       "LOC1",
		StartDateTime:    start,
		EndDateTime:      start.Add(4 * time.Hour),
	}

	cases := []struct {
		name   string
		mutate func(*gateway.BookingRequest)
	}{
		{"blank booking reference", func(r *gateway.BookingRequest) { r.BookingReference = " " }},
		{"blank sor code", func(r *gateway.BookingRequest) { r.SorCode = "" }},
		{"blank location id", func(r *gateway.BookingRequest) { r.LocationID = "" }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := base
			tc.mutate(&req)
			_, err := g.BookAppointment(context.Background(), req)
			s.Require().Error(err)
			s.Assert().ErrorIs(err, errs.ErrInvalidArgument)
		})
	}
}
