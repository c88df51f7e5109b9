//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"repairs-scheduling-api/internal/domain/appointment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, day string, startHour, startMin, endHour, endMin int) appointment.Slot {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	start := time.Date(d.Year(), d.Month(), d.Day(), startHour, startMin, 0, 0, time.UTC)
	end := time.Date(d.Year(), d.Month(), d.Day(), endHour, endMin, 0, 0, time.UTC)
	slot, err := appointment.NewSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewSlot(t *testing.T) {
	start := time.Date(2022, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		slot, err := appointment.NewSlot(start, start.Add(4*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, start, slot.Start())
		assert.Equal(t, start.Add(4*time.Hour), slot.End())
		assert.Equal(t, "2022-05-01", slot.Day())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := appointment.NewSlot(start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, appointment.ErrInvalidSlot)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		_, err := appointment.NewSlot(start, start)
		assert.ErrorIs(t, err, appointment.ErrInvalidSlot)
	})
}

func TestIsPlaceholder(t *testing.T) {
	cases := []struct {
		name        string
		startHour   int
		startMin    int
		endHour     int
		endMin      int
		placeholder bool
	}{
		{name: "9:30-14:30 blanket window", startHour: 9, startMin: 30, endHour: 14, endMin: 30, placeholder: true},
		{name: "8:00-16:00 blanket window", startHour: 8, startMin: 0, endHour: 16, endMin: 0, placeholder: true},
		{name: "8:30-13:30 blanket window", startHour: 8, startMin: 30, endHour: 13, endMin: 30, placeholder: true},
		{name: "7:00-15:00 blanket window", startHour: 7, startMin: 0, endHour: 15, endMin: 0, placeholder: true},
		{name: "ordinary morning slot", startHour: 8, startMin: 0, endHour: 12, endMin: 0, placeholder: false},
		{name: "ordinary afternoon slot", startHour: 12, startMin: 0, endHour: 16, endMin: 0, placeholder: false},
		{name: "near miss on end minute", startHour: 9, startMin: 30, endHour: 14, endMin: 0, placeholder: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := mustSlot(t, "2022-05-01", tc.startHour, tc.startMin, tc.endHour, tc.endMin)
			assert.Equal(t, tc.placeholder, slot.IsPlaceholder())
		})
	}
}

func TestDistinctDays(t *testing.T) {
	slots := []appointment.Slot{
		mustSlot(t, "2022-05-01", 8, 0, 12, 0),
		mustSlot(t, "2022-05-01", 12, 0, 16, 0),
		mustSlot(t, "2022-05-02", 8, 0, 12, 0),
	}

	assert.Equal(t, 2, appointment.DistinctDays(slots))
	assert.Equal(t, 0, appointment.DistinctDays(nil))
}

func TestFirstDays(t *testing.T) {
	day1Morning := mustSlot(t, "2022-05-01", 8, 0, 12, 0)
	day1Afternoon := mustSlot(t, "2022-05-01", 12, 0, 16, 0)
	day2 := mustSlot(t, "2022-05-02", 8, 0, 12, 0)
	day3 := mustSlot(t, "2022-05-03", 8, 0, 12, 0)

	t.Run("keeps only the first N distinct dates", func(t *testing.T) {
		got := appointment.FirstDays([]appointment.Slot{day1Morning, day2, day3}, 2)
		want := []appointment.Slot{day1Morning, day2}
		assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(appointment.Slot{})))
	})

	t.Run("late slot of a kept date survives", func(t *testing.T) {
		got := appointment.FirstDays([]appointment.Slot{day1Morning, day2, day1Afternoon}, 2)
		want := []appointment.Slot{day1Morning, day1Afternoon, day2}
		assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(appointment.Slot{})))
	})

	t.Run("fewer dates than requested", func(t *testing.T) {
		got := appointment.FirstDays([]appointment.Slot{day1Morning}, 5)
		assert.Len(t, got, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, appointment.FirstDays(nil, 3))
	})
}
