package bulk_create_schedules

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// Request модель запроса на массовое создание проведений
type Request struct {
	ActivityID       int64
	StartDate        string // YYYY-MM-DD
	EndDate          string // YYYY-MM-DD, включительно
	TimeSlots        []TimeSlot
	ValidateOverlaps *bool // по умолчанию true
}

// TimeSlot ежедневный слот в том виде, в каком он пришел от клиента
type TimeSlot struct {
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Capacity  int
}

// Response итог массового создания
// Создание не атомарно: конфликтующие кандидаты пропускаются, остальные создаются
type Response struct {
	Created   int
	Schedules []*domain.Schedule
	Conflicts []Conflict
}

// Conflict кандидат, который не был создан
type Conflict struct {
	Date       string // YYYY-MM-DD
	TimeSlot   domain.TimeSlot
	Reason     string
	ScheduleID int64 // существующее проведение, с которым пересекся кандидат
}

// candidate проведение, которое предстоит создать
type candidate struct {
	date  time.Time
	slot  domain.TimeSlot
	start time.Time
	end   time.Time
}

// plan провалидированный запрос
type plan struct {
	startDate time.Time
	endDate   time.Time
	slots     []domain.TimeSlot
}
