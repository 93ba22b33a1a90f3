package bulk_create_schedules

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Activity, error)
}

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	FindOverlapping(ctx context.Context, activityID int64, start, end time.Time, excludeID *int64) ([]*domain.Schedule, error)
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

// SettingRepository интерфейс репозитория системных настроек
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики реестра проведений
type Metrics interface {
	SchedulesAdded(n int)
	ScheduleConflictsFound(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
