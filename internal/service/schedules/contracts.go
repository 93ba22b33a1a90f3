package schedules

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.Schedule, error)
	FindOverlapping(ctx context.Context, activityID int64, start, end time.Time, excludeID *int64) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	UpdateStatus(ctx context.Context, id int64, isActive bool) error
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasActiveBySchedule(ctx context.Context, scheduleID int64) (bool, error)
}

// AssignmentRepository интерфейс чтения назначений гидов
type AssignmentRepository interface {
	ListAssignments(ctx context.Context, scheduleID int64) ([]domain.Assignment, error)
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
