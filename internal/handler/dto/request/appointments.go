package request

import "time"

// Both endpoints bind from query parameters; blank-identifier validation is
// the usecase's responsibility so it applies uniformly to every caller.

type GetAvailableAppointmentsRequest struct {
	SorCode    string     `form:"sorCode"`
	LocationID string     `form:"locationId"`
	FromDate   *time.Time `form:"fromDate" time_format:"2006-01-02"`
}

type BookAppointmentRequest struct {
	BookingReference string    `form:"bookingReference"`
	SorCode          string    `form:"sorCode"`
	LocationID       string    `form:"locationId"`
	StartDateTime    time.Time `form:"startDateTime" time_format:"2006-01-02T15:04:05" binding:"required"`
	EndDateTime      time.Time `form:"endDateTime" time_format:"2006-01-02T15:04:05" binding:"required"`
}
