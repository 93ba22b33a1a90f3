package guides

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/guides"
	"github.com/m04kA/TourOps-BookingService/internal/service/guides/models"
)

const (
	msgInvalidGuideID     = "некорректный ID гида"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidInput       = "некорректные данные гида"
	msgGuideNotFound      = "гид не найден"
	msgLanguageNotFound   = "язык не найден"
	msgInvalidDate        = "укажите дату в формате YYYY-MM-DD"
	msgInvalidPartySize   = "размер группы должен быть положительным числом"
)

// Handler справочник гидов
type Handler struct {
	service GuideService
	logger  Logger
}

func NewHandler(service GuideService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/guides
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.QueryPagination(r)
	if err != nil {
		h.logger.Warn("GET /guides - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	status, err := handlers.QueryBool(r, "status")
	if err != nil {
		h.logger.Warn("GET /guides - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListGuidesRequest{Status: status, Page: page, Limit: limit})
	if err != nil {
		h.respondError(w, "GET /guides", 0, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListLanguages GET /api/v1/languages
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLanguages(r.Context())
	if err != nil {
		h.respondError(w, "GET /languages", 0, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Availability GET /api/v1/guides/availability/{date}
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.AvailabilityByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, guides.ErrInvalidInput) {
			h.logger.Warn("GET /guides/availability/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.respondError(w, "GET /guides/availability/{date}", 0, err)
		return
	}

	h.logger.Info("GET /guides/availability/{date} - Availability retrieved: date=%s, guides=%d", date, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// AvailableLeaders GET /api/v1/guides/available-leaders
// Query params: date (YYYY-MM-DD), partySize
func (h *Handler) AvailableLeaders(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	partySize, err := strconv.Atoi(r.URL.Query().Get("partySize"))
	if err != nil || partySize <= 0 {
		h.logger.Warn("GET /guides/available-leaders - Invalid party size: %q", r.URL.Query().Get("partySize"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.service.AvailableLeaders(r.Context(), date, partySize)
	if err != nil {
		if errors.Is(err, guides.ErrInvalidInput) {
			h.logger.Warn("GET /guides/available-leaders - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.respondError(w, "GET /guides/available-leaders", 0, err)
		return
	}

	h.logger.Info("GET /guides/available-leaders - Leaders retrieved: date=%s, party_size=%d, count=%d", date, partySize, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/guides/{guideId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.guideID(w, r, "GET /guides/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /guides/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/guides
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGuideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /guides", 0, err)
		return
	}

	h.logger.Info("POST /guides - Guide created: guide_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/guides/{guideId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.guideID(w, r, "PUT /guides/{id}")
	if !ok {
		return
	}

	var req models.UpdateGuideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guides/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /guides/{id}", id, err)
		return
	}

	h.logger.Info("PUT /guides/{id} - Guide updated: guide_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/guides/{guideId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.guideID(w, r, "DELETE /guides/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /guides/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /guides/{id} - Guide deleted: guide_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) guideID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "guideId")
	if err != nil {
		h.logger.Warn("%s - Invalid guide ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, guides.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: guide_id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, guides.ErrGuideNotFound):
		h.logger.Warn("%s - Guide not found: guide_id=%d", route, id)
		handlers.RespondNotFound(w, msgGuideNotFound)

	case errors.Is(err, guides.ErrLanguageNotFound):
		h.logger.Warn("%s - Language not found: guide_id=%d, error=%v", route, id, err)
		handlers.RespondNotFound(w, msgLanguageNotFound)

	default:
		h.logger.Error("%s - Failed: guide_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
