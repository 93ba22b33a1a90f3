package bulk_create_schedules

import (
	"context"

	bulkCreateSchedules "github.com/m04kA/TourOps-BookingService/internal/usecase/bulk_create_schedules"
)

type BulkCreateSchedulesUseCase interface {
	Execute(ctx context.Context, req *bulkCreateSchedules.Request) (*bulkCreateSchedules.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
