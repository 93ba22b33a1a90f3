package replace_assignments

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	assignGuides "github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
)

const (
	msgInvalidScheduleID  = "некорректный ID проведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "проведение не найдено"
	msgGuideNotFound      = "гид не найден или выключен"
	msgLeaderConflict     = "у проведения может быть только один ведущий гид"
	msgDuplicateGuide     = "гид указан несколько раз"
)

type Handler struct {
	useCase AssignGuidesUseCase
	logger  Logger
}

func NewHandler(useCase AssignGuidesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedules/{scheduleId}/guides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("PUT /schedules/{id}/guides - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req ReplaceAssignmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id}/guides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	assignments, err := h.useCase.Replace(r.Context(), scheduleID, req.ToDomain(scheduleID))
	if err != nil {
		switch {
		case errors.Is(err, assignGuides.ErrLeaderConflict):
			h.logger.Warn("PUT /schedules/{id}/guides - Leader conflict: schedule_id=%d", scheduleID)
			handlers.RespondLeaderConflict(w, msgLeaderConflict)

		case errors.Is(err, assignGuides.ErrDuplicateGuide):
			h.logger.Warn("PUT /schedules/{id}/guides - Duplicate guide: schedule_id=%d", scheduleID)
			handlers.RespondConflict(w, msgDuplicateGuide)

		case errors.Is(err, assignGuides.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedules/{id}/guides - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, assignGuides.ErrGuideNotFound):
			h.logger.Warn("PUT /schedules/{id}/guides - Guide not found: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondNotFound(w, msgGuideNotFound)

		default:
			h.logger.Error("PUT /schedules/{id}/guides - Failed to replace guides: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{id}/guides - Guides replaced: schedule_id=%d, count=%d", scheduleID, len(assignments))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAssignments(assignments))
}
