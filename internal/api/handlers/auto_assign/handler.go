package auto_assign

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	assignGuides "github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
)

const (
	msgInvalidScheduleID = "некорректный ID проведения"
	msgScheduleNotFound  = "проведение не найдено"
	msgAlreadyAssigned   = "на проведение уже назначены гиды"
	msgNoGuides          = "нет доступных гидов"
	msgLeaderConflict    = "подборщик вернул больше одного ведущего гида"
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

// Handle POST /api/v1/schedules/{scheduleId}/guides/auto
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("POST /schedules/{id}/guides/auto - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	assignments, err := h.useCase.AutoAssign(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, assignGuides.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/guides/auto - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, assignGuides.ErrAlreadyAssigned):
			h.logger.Warn("POST /schedules/{id}/guides/auto - Already assigned: schedule_id=%d", scheduleID)
			handlers.RespondConflict(w, msgAlreadyAssigned)

		case errors.Is(err, assignGuides.ErrNoGuidesAvailable), errors.Is(err, assignGuides.ErrGuideNotFound):
			h.logger.Warn("POST /schedules/{id}/guides/auto - No guides: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondConflict(w, msgNoGuides)

		case errors.Is(err, assignGuides.ErrLeaderConflict):
			h.logger.Error("POST /schedules/{id}/guides/auto - Selector returned several leaders: schedule_id=%d", scheduleID)
			handlers.RespondLeaderConflict(w, msgLeaderConflict)

		default:
			h.logger.Error("POST /schedules/{id}/guides/auto - Failed to assign guides: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/guides/auto - Guides assigned: schedule_id=%d, count=%d", scheduleID, len(assignments))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAssignments(assignments))
}
