package commission_report

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	CommissionReport(ctx context.Context, req *models.CommissionReportRequest) (*models.CommissionReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
