package companies

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/companies"
	"github.com/m04kA/TourOps-BookingService/internal/service/companies/models"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidInput       = "некорректные данные компании"
	msgNotFound           = "компания не найдена"
)

// Handler справочник компаний-партнеров
type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/companies
// Query params: status, page, limit (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.QueryPagination(r)
	if err != nil {
		h.logger.Warn("GET /companies - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	status, err := handlers.QueryBool(r, "status")
	if err != nil {
		h.logger.Warn("GET /companies - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListCompaniesRequest{Status: status, Page: page, Limit: limit})
	if err != nil {
		h.respondError(w, "GET /companies", 0, err)
		return
	}

	h.logger.Info("GET /companies - Companies retrieved: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/companies/{companyId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyID(w, r, "GET /companies/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /companies/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/companies
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /companies", 0, err)
		return
	}

	h.logger.Info("POST /companies - Company created: company_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/companies/{companyId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyID(w, r, "PUT /companies/{id}")
	if !ok {
		return
	}

	var req models.UpdateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /companies/{id}", id, err)
		return
	}

	h.logger.Info("PUT /companies/{id} - Company updated: company_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleStatus PATCH /api/v1/companies/{companyId}/toggle-status
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyID(w, r, "PATCH /companies/{id}/toggle-status")
	if !ok {
		return
	}

	result, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		h.respondError(w, "PATCH /companies/{id}/toggle-status", id, err)
		return
	}

	h.logger.Info("PATCH /companies/{id}/toggle-status - Status changed: company_id=%d, status=%t", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/companies/{companyId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.companyID(w, r, "DELETE /companies/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /companies/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /companies/{id} - Company deleted: company_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) companyID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("%s - Invalid company ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, companies.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: company_id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, companies.ErrCompanyNotFound):
		h.logger.Warn("%s - Company not found: company_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: company_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
