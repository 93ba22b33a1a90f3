package guides

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/guides/models"
)

type GuideService interface {
	List(ctx context.Context, req *models.ListGuidesRequest) (*models.GuideListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.GuideResponse, error)
	ListLanguages(ctx context.Context) ([]models.LanguageResponse, error)
	Create(ctx context.Context, req *models.CreateGuideRequest) (*models.GuideResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateGuideRequest) (*models.GuideResponse, error)
	Delete(ctx context.Context, id int64) error
	AvailabilityByDate(ctx context.Context, date string) ([]models.GuideAvailabilityResponse, error)
	AvailableLeaders(ctx context.Context, date string, partySize int) ([]models.GuideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
