package guides

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// GuideRepository интерфейс репозитория гидов
type GuideRepository interface {
	List(ctx context.Context, filter domain.GuidesFilter) ([]*domain.Guide, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Guide, error)
	Create(ctx context.Context, g *domain.Guide) (*domain.Guide, error)
	Update(ctx context.Context, g *domain.Guide) error
	Delete(ctx context.Context, id int64) error
	ListLanguages(ctx context.Context, onlyActive bool) ([]*domain.Language, error)
	SetLanguages(ctx context.Context, guideID int64, languageIDs []int64) error
	ListAvailable(ctx context.Context, start, end time.Time, excludeScheduleID int64) ([]*domain.Guide, error)
	ListLoad(ctx context.Context, start, end time.Time) ([]domain.GuideLoad, error)
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
