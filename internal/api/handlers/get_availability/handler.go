package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidScheduleID = "некорректный ID проведения"
	msgScheduleNotFound  = "проведение не найдено"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/availability - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	availability, err := h.useCase.GetAvailability(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id}/availability - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /schedules/{id}/availability - Failed to get availability: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/availability - Availability retrieved: schedule_id=%d, available=%d",
		scheduleID, availability.AvailableSpaces)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(availability))
}
