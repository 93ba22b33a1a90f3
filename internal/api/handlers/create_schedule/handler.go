package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	createSchedule "github.com/m04kA/TourOps-BookingService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные проведения"
	msgActivityNotFound   = "активность не найдена"
	msgScheduleOverlap    = "проведение пересекается с существующим активным проведением"
	msgGuideNotFound      = "гид не найден или выключен"
	msgLeaderConflict     = "у проведения может быть только один ведущий гид"
	msgDuplicateGuide     = "гид указан несколько раз"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: activity_id=%d, error=%v", req.ActivityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSchedule.ErrActivityNotFound):
			h.logger.Warn("POST /schedules - Activity not found: activity_id=%d", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, createSchedule.ErrScheduleOverlap):
			h.logger.Warn("POST /schedules - Overlap: activity_id=%d, error=%v", req.ActivityID, err)
			handlers.RespondConflict(w, msgScheduleOverlap)

		case errors.Is(err, createSchedule.ErrGuideNotFound):
			h.logger.Warn("POST /schedules - Guide not found: activity_id=%d, error=%v", req.ActivityID, err)
			handlers.RespondNotFound(w, msgGuideNotFound)

		case errors.Is(err, createSchedule.ErrLeaderConflict):
			h.logger.Warn("POST /schedules - Leader conflict: activity_id=%d", req.ActivityID)
			handlers.RespondLeaderConflict(w, msgLeaderConflict)

		case errors.Is(err, createSchedule.ErrDuplicateGuide):
			h.logger.Warn("POST /schedules - Duplicate guide: activity_id=%d", req.ActivityID)
			handlers.RespondConflict(w, msgDuplicateGuide)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: activity_id=%d, error=%v", req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created successfully: schedule_id=%d, activity_id=%d, guides=%d",
		result.Schedule.ID, req.ActivityID, len(result.Assignments))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
