package quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidScheduleID = "некорректный ID проведения"
	msgInvalidCounts     = "некорректное количество участников"
	msgScheduleNotFound  = "проведение не найдено"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/quote
// Query params: adultCount, childCount, seniorCount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/quote - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(r, scheduleID)
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/quote - Invalid counts: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounts)
		return
	}

	result, err := h.useCase.Quote(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /schedules/{id}/quote - Invalid input: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidCounts)

		case errors.Is(err, getAvailability.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id}/quote - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /schedules/{id}/quote - Failed to quote: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/quote - Quote calculated: schedule_id=%d, total=%.2f", scheduleID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
