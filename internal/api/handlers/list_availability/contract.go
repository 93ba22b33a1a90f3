package list_availability

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

type ListAvailabilityUseCase interface {
	ListAvailability(ctx context.Context, req *getAvailability.ListRequest) ([]domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
