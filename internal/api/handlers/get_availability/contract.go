package get_availability

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

type GetAvailabilityUseCase interface {
	GetAvailability(ctx context.Context, scheduleID int64) (*domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
