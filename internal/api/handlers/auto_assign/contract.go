package auto_assign

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

type AssignGuidesUseCase interface {
	AutoAssign(ctx context.Context, scheduleID int64) ([]domain.Assignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
