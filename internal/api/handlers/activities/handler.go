package activities

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/activities"
	"github.com/m04kA/TourOps-BookingService/internal/service/activities/models"
)

const (
	msgInvalidActivityID  = "некорректный ID активности"
	msgInvalidTypeID      = "некорректный ID типа активности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidInput       = "некорректные данные активности"
	msgActivityNotFound   = "активность не найдена"
	msgTypeNotFound       = "тип активности не найден"
	msgDuplicateTypeCode  = "тип активности с таким кодом уже существует"
	msgHasActiveBookings  = "у активности есть действующие бронирования"
)

// Handler каталог активностей и их типов
type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListTypes GET /api/v1/activity-types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTypes(r.Context())
	if err != nil {
		h.respondError(w, "GET /activity-types", 0, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetType GET /api/v1/activity-types/{typeId}
func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "typeId", "GET /activity-types/{id}", msgInvalidTypeID)
	if !ok {
		return
	}

	result, err := h.service.GetType(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /activity-types/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateType POST /api/v1/activity-types
func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activity-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateType(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /activity-types", 0, err)
		return
	}

	h.logger.Info("POST /activity-types - Type created: type_id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateType PUT /api/v1/activity-types/{typeId}
func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "typeId", "PUT /activity-types/{id}", msgInvalidTypeID)
	if !ok {
		return
	}

	var req models.UpdateActivityTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /activity-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateType(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /activity-types/{id}", id, err)
		return
	}

	h.logger.Info("PUT /activity-types/{id} - Type updated: type_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/activities
// Query params: status, page, limit (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.QueryPagination(r)
	if err != nil {
		h.logger.Warn("GET /activities - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	status, err := handlers.QueryBool(r, "status")
	if err != nil {
		h.logger.Warn("GET /activities - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListActivitiesRequest{Status: status, Page: page, Limit: limit})
	if err != nil {
		h.respondError(w, "GET /activities", 0, err)
		return
	}

	h.logger.Info("GET /activities - Activities retrieved: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/activities/{activityId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "activityId", "GET /activities/{id}", msgInvalidActivityID)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /activities/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/activities
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /activities", 0, err)
		return
	}

	h.logger.Info("POST /activities - Activity created: activity_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/activities/{activityId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "activityId", "PUT /activities/{id}", msgInvalidActivityID)
	if !ok {
		return
	}

	var req models.UpdateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /activities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /activities/{id}", id, err)
		return
	}

	h.logger.Info("PUT /activities/{id} - Activity updated: activity_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleStatus PATCH /api/v1/activities/{activityId}/toggle-status
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "activityId", "PATCH /activities/{id}/toggle-status", msgInvalidActivityID)
	if !ok {
		return
	}

	result, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		h.respondError(w, "PATCH /activities/{id}/toggle-status", id, err)
		return
	}

	h.logger.Info("PATCH /activities/{id}/toggle-status - Status changed: activity_id=%d, status=%t", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/activities/{activityId}
// Активность с действующими бронированиями удалить нельзя
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "activityId", "DELETE /activities/{id}", msgInvalidActivityID)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /activities/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /activities/{id} - Activity deleted: activity_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name, route, msg string) (int64, bool) {
	id, err := handlers.PathID(r, name)
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msg)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, activities.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, activities.ErrActivityNotFound):
		h.logger.Warn("%s - Activity not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgActivityNotFound)

	case errors.Is(err, activities.ErrActivityTypeNotFound):
		h.logger.Warn("%s - Activity type not found: id=%d, error=%v", route, id, err)
		handlers.RespondNotFound(w, msgTypeNotFound)

	case errors.Is(err, activities.ErrDuplicateTypeCode):
		h.logger.Warn("%s - Duplicate type code: id=%d", route, id)
		handlers.RespondConflict(w, msgDuplicateTypeCode)

	case errors.Is(err, activities.ErrHasActiveBookings):
		h.logger.Warn("%s - Has active bookings: id=%d", route, id)
		handlers.RespondConflict(w, msgHasActiveBookings)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
