package quote

import (
	"context"

	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

type QuoteUseCase interface {
	Quote(ctx context.Context, req *getAvailability.QuoteRequest) (*getAvailability.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
