package assign_guides

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория проведений
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error)
}

// GuideRepository интерфейс репозитория гидов и назначений
type GuideRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Guide, error)
	ListAssignments(ctx context.Context, scheduleID int64) ([]domain.Assignment, error)
	ReplaceAssignments(ctx context.Context, scheduleID int64, assignments []domain.Assignment) error
}

// GuideSelector стратегия автоматического подбора гидов
type GuideSelector interface {
	SelectGuides(ctx context.Context, scheduleID int64, partySize int) ([]domain.Assignment, error)
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
