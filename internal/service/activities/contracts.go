package activities

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ActivityRepository интерфейс репозитория каталога активностей
type ActivityRepository interface {
	ListTypes(ctx context.Context) ([]*domain.ActivityType, error)
	GetTypeByID(ctx context.Context, id int64) (*domain.ActivityType, error)
	CreateType(ctx context.Context, t *domain.ActivityType) (*domain.ActivityType, error)
	UpdateType(ctx context.Context, t *domain.ActivityType) error

	List(ctx context.Context, filter domain.ActivitiesFilter) ([]*domain.Activity, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasActiveByActivity(ctx context.Context, activityID int64) (bool, error)
}

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	LockByActivity(ctx context.Context, activityID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
