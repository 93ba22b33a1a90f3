package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.Schedule, error)
}

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
