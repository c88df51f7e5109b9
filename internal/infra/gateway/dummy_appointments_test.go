//go:build unit

package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"repairs-scheduling-api/internal/infra/gateway"
	"repairs-scheduling-api/internal/pkg/clock"
	"repairs-scheduling-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDummyGateway(now time.Time) *gateway.DummyAppointmentsGateway {
	clk := clock.NewMockClock(now)
	return gateway.NewDummyAppointmentsGateway(clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDummyGatewayAvailability(t *testing.T) {
	g := newDummyGateway(time.Date(2022, 5, 1, 10, 30, 0, 0, time.UTC))

	slots, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1"})
	require.NoError(t, err)
	require.Len(t, slots, 5)

	// Sorted ascending, earliest offset first.
	assert.Equal(t, "2022-05-03", slots[0].Day())
	assert.Equal(t, "2022-05-23", slots[4].Day())
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start().Before(slots[i].Start()))
	}
}

func TestDummyGatewayAvailabilityFromDate(t *testing.T) {
	g := newDummyGateway(time.Date(2022, 5, 1, 10, 30, 0, 0, time.UTC))

	from := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	slots, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "SOR1", LocationID: "LOC1", FromDate: &from})
	require.NoError(t, err)
	require.Len(t, slots, 5)
	assert.Equal(t, "2022-06-03", slots[0].Day())
}

func TestDummyGatewayAvailabilityValidation(t *testing.T) {
	g := newDummyGateway(time.Date(2022, 5, 1, 10, 30, 0, 0, time.UTC))

	_, err := g.GetAvailableAppointments(context.Background(), gateway.AvailabilityQuery{SorCode: "", LocationID: "LOC1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDummyGatewayBookEchoesReference(t *testing.T) {
	g := newDummyGateway(time.Date(2022, 5, 1, 10, 30, 0, 0, time.UTC))

	ref, err := g.BookAppointment(context.Background(), gateway.BookingRequest{BookingReference: "REF1"})
	require.NoError(t, err)
	assert.Equal(t, "REF1", ref)

	_, err = g.BookAppointment(context.Background(), gateway.BookingRequest{BookingReference: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
