package settings

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/settings/models"
)

type SettingService interface {
	List(ctx context.Context, req *models.ListSettingsRequest) (*models.SettingListResponse, error)
	Get(ctx context.Context, key string) (*models.SettingResponse, error)
	GetByKeys(ctx context.Context, keys []string) ([]models.SettingResponse, error)
	UpdateValue(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
