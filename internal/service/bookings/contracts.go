package bookings

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int, error)
	Cancel(ctx context.Context, booking *domain.Booking) error
	CommissionsByPeriod(ctx context.Context, from, to time.Time) ([]domain.CommissionSummary, error)
}

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error)
	AdjustBookedCount(ctx context.Context, id int64, delta int) (*domain.Schedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики реестра бронирований
type Metrics interface {
	BookingMutation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
