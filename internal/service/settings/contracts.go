package settings

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// SettingRepository интерфейс репозитория системных настроек
type SettingRepository interface {
	List(ctx context.Context, filter domain.SettingsFilter) ([]*domain.Setting, int, error)
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
	GetByKeys(ctx context.Context, keys []string) ([]*domain.Setting, error)
	UpdateValue(ctx context.Context, key, value string) (*domain.Setting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
