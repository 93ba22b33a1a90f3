package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status, activityScheduleId, companyId, page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "GET /bookings", nil)
}

// HandleByCompany GET /api/v1/companies/{companyId}/bookings
func (h *Handler) HandleByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/bookings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}
	h.list(w, r, "GET /companies/{id}/bookings", &companyID)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, route string, companyID *int64) {
	serviceReq, err := ToServiceRequest(r, companyID)
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid filter: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("%s - Failed to list bookings: error=%v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Bookings retrieved successfully: count=%d, total=%d",
		route, len(result.Items), result.Pagination.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
