package schedules

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
)

const (
	msgInvalidScheduleID  = "некорректный ID проведения"
	msgInvalidActivityID  = "некорректный ID активности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса, время ожидается в RFC3339"
	msgInvalidInput       = "некорректные данные проведения"
	msgScheduleNotFound   = "проведение не найдено"
	msgActivityNotFound   = "активность не найдена"
	msgScheduleOverlap    = "проведение пересекается с существующим активным проведением"
	msgHasActiveBookings  = "у проведения есть действующие бронирования"
	msgCapacityExceeded   = "вместимость меньше числа занятых мест"
)

// Handler реестр проведений
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/schedules/{scheduleId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r, "GET /schedules/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /schedules/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListByActivity GET /api/v1/activities/{activityId}/schedules
// Query params: from, to (RFC3339), onlyActive (опционально)
func (h *Handler) ListByActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := handlers.PathID(r, "activityId")
	if err != nil {
		h.logger.Warn("GET /activities/{id}/schedules - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	req, err := toListRequest(r, activityID)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/schedules - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByActivity(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /activities/{id}/schedules", activityID, err)
		return
	}

	h.logger.Info("GET /activities/{id}/schedules - Schedules retrieved: activity_id=%d, count=%d", activityID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/schedules/{scheduleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r, "PUT /schedules/{id}")
	if !ok {
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /schedules/{id}", id, err)
		return
	}

	h.logger.Info("PUT /schedules/{id} - Schedule updated: schedule_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleStatus PATCH /api/v1/schedules/{scheduleId}/toggle-status
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r, "PATCH /schedules/{id}/toggle-status")
	if !ok {
		return
	}

	result, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		h.respondError(w, "PATCH /schedules/{id}/toggle-status", id, err)
		return
	}

	h.logger.Info("PATCH /schedules/{id}/toggle-status - Status changed: schedule_id=%d, status=%t", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r, "DELETE /schedules/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /schedules/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule deleted: schedule_id=%d", id)
	handlers.RespondNoContent(w)
}

func toListRequest(r *http.Request, activityID int64) (*models.ListSchedulesRequest, error) {
	req := &models.ListSchedulesRequest{ActivityID: activityID}

	for name, dst := range map[string]**time.Time{"from": &req.From, "to": &req.To} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		*dst = &t
	}

	onlyActive, err := handlers.QueryBool(r, "onlyActive")
	if err != nil {
		return nil, err
	}
	if onlyActive != nil {
		req.OnlyActive = *onlyActive
	}

	return req, nil
}

func (h *Handler) scheduleID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("%s - Invalid schedule ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, schedules.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, schedules.ErrScheduleNotFound):
		h.logger.Warn("%s - Schedule not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	case errors.Is(err, schedules.ErrActivityNotFound):
		h.logger.Warn("%s - Activity not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgActivityNotFound)

	case errors.Is(err, schedules.ErrScheduleOverlap):
		h.logger.Warn("%s - Overlap: id=%d, error=%v", route, id, err)
		handlers.RespondConflict(w, msgScheduleOverlap)

	case errors.Is(err, schedules.ErrHasActiveBookings):
		h.logger.Warn("%s - Has active bookings: id=%d", route, id)
		handlers.RespondConflict(w, msgHasActiveBookings)

	case errors.Is(err, schedules.ErrCapacityExceeded):
		h.logger.Warn("%s - Capacity below booked: id=%d, error=%v", route, id, err)
		handlers.RespondCapacityExceeded(w, msgCapacityExceeded, err)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
