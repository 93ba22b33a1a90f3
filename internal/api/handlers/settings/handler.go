package settings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/settings"
	"github.com/m04kA/TourOps-BookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidInput       = "некорректное значение настройки"
	msgNotFound           = "настройка не найдена"
)

// Handler системные настройки
type Handler struct {
	service SettingService
	logger  Logger
}

func NewHandler(service SettingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/settings
// Query params: keys (через запятую) или page, limit
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if keys := handlers.QueryString(r, "keys"); keys != nil {
		result, err := h.service.GetByKeys(r.Context(), strings.Split(*keys, ","))
		if err != nil {
			h.respondError(w, "GET /settings", *keys, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	page, limit, err := handlers.QueryPagination(r)
	if err != nil {
		h.logger.Warn("GET /settings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSettingsRequest{Page: page, Limit: limit})
	if err != nil {
		h.respondError(w, "GET /settings", "", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/settings/{key}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.service.Get(r.Context(), key)
	if err != nil {
		h.respondError(w, "GET /settings/{key}", key, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/settings/{key}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateValue(r.Context(), key, &req)
	if err != nil {
		h.respondError(w, "PUT /settings/{key}", key, err)
		return
	}

	h.logger.Info("PUT /settings/{key} - Setting updated: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, key string, err error) {
	switch {
	case errors.Is(err, settings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: key=%s, error=%v", route, key, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, settings.ErrSettingNotFound):
		h.logger.Warn("%s - Setting not found: key=%s", route, key)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: key=%s, error=%v", route, key, err)
		handlers.RespondInternalError(w)
	}
}
