package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgAlreadyCancelled = "бронирование уже отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Места возвращаются проведению, бронирование остается в реестре со статусом cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, available=%d",
		bookingID, result.AvailableSpaces)
	handlers.RespondJSON(w, http.StatusOK, result)
}
