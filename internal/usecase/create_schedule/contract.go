package create_schedule

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	// GetByIDForUpdate блокирует строку активности, сериализуя проверку пересечений и вставку
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Activity, error)
}

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	FindOverlapping(ctx context.Context, activityID int64, start, end time.Time, excludeID *int64) ([]*domain.Schedule, error)
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

// GuideAssigner назначение гидов на созданное проведение
type GuideAssigner interface {
	Replace(ctx context.Context, scheduleID int64, assignments []domain.Assignment) ([]domain.Assignment, error)
	AutoAssign(ctx context.Context, scheduleID int64) ([]domain.Assignment, error)
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
