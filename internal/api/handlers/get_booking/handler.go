package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
