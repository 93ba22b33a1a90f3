package list_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	availabilityModels "github.com/m04kA/TourOps-BookingService/internal/api/handlers/get_availability"
	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidActivityID = "некорректный ID активности"
	msgInvalidParams     = "некорректные параметры запроса"
	msgInvalidDates      = "некорректный диапазон дат, ожидается YYYY-MM-DD"
	msgActivityNotFound  = "активность не найдена"
)

type Handler struct {
	useCase ListAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: activityId, startDate, endDate, onlyActive, upcoming (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "GET /availability", nil)
}

// HandleByActivity GET /api/v1/activities/{activityId}/availability
func (h *Handler) HandleByActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := handlers.PathID(r, "activityId")
	if err != nil {
		h.logger.Warn("GET /activities/{id}/availability - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}
	h.list(w, r, "GET /activities/{id}/availability", &activityID)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, route string, activityID *int64) {
	useCaseReq, err := ToUseCaseRequest(r, activityID)
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.ListAvailability(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("%s - Invalid dates: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, getAvailability.ErrActivityNotFound):
			h.logger.Warn("%s - Activity not found: %v", route, err)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("%s - Failed to list availability: error=%v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Availability retrieved: count=%d", route, len(result))
	handlers.RespondJSON(w, http.StatusOK, availabilityModels.FromDomainList(result))
}
