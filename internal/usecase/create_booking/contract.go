package create_booking

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error)
	AdjustBookedCount(ctx context.Context, id int64, delta int) (*domain.Schedule, error)
}

// ActivityRepository интерфейс репозитория активностей (источник цен)
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// CompanyRepository интерфейс репозитория компаний (источник комиссии)
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики реестра бронирований
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
