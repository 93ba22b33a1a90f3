package guideselection

import (
	"context"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// ScheduleRepository интерфейс чтения проведений
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
}

// GuideRepository интерфейс поиска свободных гидов
type GuideRepository interface {
	ListAvailable(ctx context.Context, start, end time.Time, excludeScheduleID int64) ([]*domain.Guide, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
