package add_attendees

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	addAttendees "github.com/m04kA/TourOps-BookingService/internal/usecase/add_attendees"
)

const (
	msgInvalidScheduleID  = "некорректный ID проведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuantity    = "количество участников должно быть положительным"
	msgScheduleNotFound   = "проведение не найдено"
	msgScheduleInactive   = "проведение выключено"
	msgCapacityExceeded   = "на проведении недостаточно свободных мест"
)

// AddAttendeesRequest HTTP request model
type AddAttendeesRequest struct {
	Quantity int `json:"quantity"`
}

type Handler struct {
	useCase AddAttendeesUseCase
	logger  Logger
}

func NewHandler(useCase AddAttendeesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/{scheduleId}/attendees
// Участники без бронирования занимают места, но не попадают в реестр бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("POST /schedules/{id}/attendees - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req AddAttendeesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/{id}/attendees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addAttendees.Request{ScheduleID: scheduleID, Quantity: req.Quantity})
	if err != nil {
		switch {
		case errors.Is(err, addAttendees.ErrInvalidInput):
			h.logger.Warn("POST /schedules/{id}/attendees - Invalid quantity: schedule_id=%d, quantity=%d", scheduleID, req.Quantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, addAttendees.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/attendees - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, addAttendees.ErrScheduleInactive):
			h.logger.Warn("POST /schedules/{id}/attendees - Schedule inactive: schedule_id=%d", scheduleID)
			handlers.RespondConflict(w, msgScheduleInactive)

		case errors.Is(err, addAttendees.ErrCapacityExceeded):
			h.logger.Warn("POST /schedules/{id}/attendees - Capacity exceeded: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondCapacityExceeded(w, msgCapacityExceeded, err)

		default:
			h.logger.Error("POST /schedules/{id}/attendees - Failed to add attendees: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/attendees - Attendees added: schedule_id=%d, quantity=%d, available=%d",
		scheduleID, req.Quantity, result.AvailableSpaces)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSchedule(result.Schedule))
}
