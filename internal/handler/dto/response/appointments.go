package response

import (
	"time"

	"repairs-scheduling-api/internal/domain/appointment"
)

type AppointmentResponse struct {
	SorCode    string    `json:"sorCode"`
	LocationID string    `json:"locationId"`
	Date       string    `json:"date"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

type BookAppointmentResponse struct {
	BookingReference string `json:"bookingReference"`
}

func FromSlot(sorCode, locationID string, slot appointment.Slot) *AppointmentResponse {
	return &AppointmentResponse{
		SorCode:    sorCode,
		LocationID: locationID,
		Date:       slot.Day(),
		StartTime:  slot.Start(),
		EndTime:    slot.End(),
	}
}

// FromSlots always returns a non-nil list so an empty search serializes as
// [] rather than null.
func FromSlots(sorCode, locationID string, slots []appointment.Slot) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, FromSlot(sorCode, locationID, slot))
	}
	return out
}
