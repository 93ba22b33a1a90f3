package bulk_create_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	bulkCreateSchedules "github.com/m04kA/TourOps-BookingService/internal/usecase/bulk_create_schedules"
)

const (
	msgInvalidActivityID  = "некорректный ID активности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный запрос на создание проведений"
	msgInvalidDates       = "укажите даты в формате YYYY-MM-DD, startDate не позже endDate"
	msgNoTimeSlots        = "укажите хотя бы один временной слот"
	msgInvalidTimeSlot    = "время слота в формате HH:MM, начало раньше конца, вместимость больше нуля"
	msgPartiallyCreated   = "создание проведений прервано внутренней ошибкой, часть проведений уже создана"
	msgRangeTooLong       = "диапазон дат превышает допустимый"
	msgActivityNotFound   = "активность не найдена"
)

type Handler struct {
	useCase BulkCreateSchedulesUseCase
	logger  Logger
}

func NewHandler(useCase BulkCreateSchedulesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/activities/{activityId}/schedules/bulk
// Конфликтующие кандидаты пропускаются и возвращаются в conflicts, остальные создаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID, err := handlers.PathID(r, "activityId")
	if err != nil {
		h.logger.Warn("POST /activities/{id}/schedules/bulk - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	var req BulkCreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activities/{id}/schedules/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(activityID))
	if err != nil {
		switch {
		case errors.Is(err, bulkCreateSchedules.ErrInvalidDates):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - Invalid dates: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, bulkCreateSchedules.ErrNoTimeSlots):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - No time slots: activity_id=%d", activityID)
			handlers.RespondBadRequest(w, msgNoTimeSlots)

		case errors.Is(err, bulkCreateSchedules.ErrInvalidTimeSlot):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - Invalid time slot: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bulkCreateSchedules.ErrInvalidInput):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - Invalid input: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bulkCreateSchedules.ErrRangeTooLong):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - Range too long: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, bulkCreateSchedules.ErrActivityNotFound):
			h.logger.Warn("POST /activities/{id}/schedules/bulk - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case result != nil && result.Created > 0:
			h.logger.Error("POST /activities/{id}/schedules/bulk - Stopped after partial success: activity_id=%d, created=%d, error=%v",
				activityID, result.Created, err)
			handlers.RespondErrorWithDetails(w, http.StatusInternalServerError, handlers.KindInternal, msgPartiallyCreated,
				PartialDetails(result))

		default:
			h.logger.Error("POST /activities/{id}/schedules/bulk - Failed to create schedules: activity_id=%d, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activities/{id}/schedules/bulk - Schedules created: activity_id=%d, created=%d, conflicts=%d",
		activityID, result.Created, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
