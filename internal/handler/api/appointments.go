package api

import (
	"errors"
	"net/http"

	reqdto "repairs-scheduling-api/internal/handler/dto/request"
	resdto "repairs-scheduling-api/internal/handler/dto/response"
	"repairs-scheduling-api/internal/handler/httperr"
	"repairs-scheduling-api/internal/pkg/errs"
	"repairs-scheduling-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AppointmentsHandler struct {
	appointmentsUseCase usecase.AppointmentsUseCase
}

func NewAppointmentsHandler(appointmentsUseCase usecase.AppointmentsUseCase) *AppointmentsHandler {
	return &AppointmentsHandler{
		appointmentsUseCase: appointmentsUseCase,
	}
}

// @Summary Available appointments
// @Description Search available repair appointment slots for a work type at a location
// @Tags appointments
// @Produce json
// @Param sorCode query string true "Schedule of rates code identifying the work type"
// @Param locationId query string true "Location identifier"
// @Param fromDate query string false "Earliest date to search from (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/appointments/available [get]
func (h *AppointmentsHandler) AvailableAppointments(c *gin.Context) {
	var req reqdto.GetAvailableAppointmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slots, err := h.appointmentsUseCase.RetrieveAvailableAppointments(c.Request.Context(), req.SorCode, req.LocationID, req.FromDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(req.SorCode, req.LocationID, slots))
}

// @Summary Book appointment
// @Description Book a repair appointment slot under a booking reference
// @Tags appointments
// @Produce json
// @Param bookingReference query string true "Booking reference, also the order's primary identifier"
// @Param sorCode query string true "Schedule of rates code identifying the work type"
// @Param locationId query string true "Location identifier"
// @Param startDateTime query string true "Slot start (YYYY-MM-DDTHH:MM:SS)"
// @Param endDateTime query string true "Slot end (YYYY-MM-DDTHH:MM:SS)"
// @Success 200 {object} resdto.BookAppointmentResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/appointments/book [post]
func (h *AppointmentsHandler) BookAppointment(c *gin.Context) {
	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	bookingReference, err := h.appointmentsUseCase.BookAppointment(c.Request.Context(), usecase.BookAppointmentParams{
		BookingReference: req.BookingReference,
		SorCode:          req.SorCode,
		LocationID:       req.LocationID,
		StartDateTime:    req.StartDateTime,
		EndDateTime:      req.EndDateTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookAppointmentResponse{
		BookingReference: bookingReference,
	})
}

func (h *AppointmentsHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing or invalid identifier", nil)
	case errors.Is(err, errs.ErrOutOfRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "endDateTime must not be before startDateTime", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
