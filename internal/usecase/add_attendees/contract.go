package add_attendees

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error)
	AdjustBookedCount(ctx context.Context, id int64, delta int) (*domain.Schedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики реестра мест
type Metrics interface {
	BookingMutation(operation string)
	CapacityRejected(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
