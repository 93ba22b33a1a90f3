package schedules

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error)
	ListByActivity(ctx context.Context, req *models.ListSchedulesRequest) ([]models.ScheduleResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
	ToggleStatus(ctx context.Context, id int64) (*models.ScheduleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
