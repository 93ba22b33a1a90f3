package replace_assignments

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

type AssignGuidesUseCase interface {
	Replace(ctx context.Context, scheduleID int64, assignments []domain.Assignment) ([]domain.Assignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
