package activities

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/activities/models"
)

type ActivityService interface {
	ListTypes(ctx context.Context) ([]models.ActivityTypeResponse, error)
	GetType(ctx context.Context, id int64) (*models.ActivityTypeResponse, error)
	CreateType(ctx context.Context, req *models.CreateActivityTypeRequest) (*models.ActivityTypeResponse, error)
	UpdateType(ctx context.Context, id int64, req *models.UpdateActivityTypeRequest) (*models.ActivityTypeResponse, error)

	List(ctx context.Context, req *models.ListActivitiesRequest) (*models.ActivityListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error)
	Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateActivityRequest) (*models.ActivityResponse, error)
	ToggleStatus(ctx context.Context, id int64) (*models.ActivityResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
