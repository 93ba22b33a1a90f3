package commission_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
)

const msgInvalidPeriod = "укажите период dateFrom и dateTo в формате YYYY-MM-DD, dateFrom не позже dateTo"

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

// Handle GET /api/v1/bookings/reports/commissions
// Query params: dateFrom, dateTo (YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.CommissionReportRequest{
		DateFrom: r.URL.Query().Get("dateFrom"),
		DateTo:   r.URL.Query().Get("dateTo"),
	}

	result, err := h.service.CommissionReport(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/reports/commissions - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings/reports/commissions - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/reports/commissions - Report built: companies=%d, commission=%.2f",
		len(result.Companies), result.TotalCommission)
	handlers.RespondJSON(w, http.StatusOK, result)
}
