package domain

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// Schedule конкретное проведение активности (occurrence) с вместимостью
// Инвариант: 0 <= BookedCount <= Capacity
type Schedule struct {
	ID             int64
	ActivityID     int64
	ActivityTitle  string // денормализовано для чтения
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	Capacity       int
	BookedCount    int
	IsActive       bool

	// Переопределение цен активности (опционально)
	AdultPrice  *float64
	ChildPrice  *float64
	SeniorPrice *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailableSpaces возвращает количество свободных мест (никогда не отрицательное)
func (s *Schedule) AvailableSpaces() int {
	free := s.Capacity - s.BookedCount
	if free < 0 {
		return 0
	}
	return free
}

// CanHost возвращает true, если на проведении хватает мест для n человек
func (s *Schedule) CanHost(n int) bool {
	return n <= s.AvailableSpaces()
}

// Overlaps возвращает true, если интервал [start, end) пересекается с проведением
// Касание границ пересечением не считается
func (s *Schedule) Overlaps(start, end time.Time) bool {
	return s.ScheduledStart.Before(end) && start.Before(s.ScheduledEnd)
}

// EffectivePrices накладывает переопределения проведения на цены активности
func (s *Schedule) EffectivePrices(base Prices) Prices {
	result := base
	if s.AdultPrice != nil {
		result.Adult = *s.AdultPrice
	}
	if s.ChildPrice != nil {
		result.Child = *s.ChildPrice
	}
	if s.SeniorPrice != nil {
		result.Senior = *s.SeniorPrice
	}
	return result
}

// TimeSlot ежедневный слот для массового создания расписаний
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
}

// Bounds возвращает начало и конец слота в указанную дату
func (t TimeSlot) Bounds(date time.Time) (time.Time, time.Time) {
	return t.StartTime.OnDate(date), t.EndTime.OnDate(date)
}

// SchedulesFilter фильтр для выборки проведений
type SchedulesFilter struct {
	ActivityID *int64
	From       *time.Time // scheduled_start >= From
	To         *time.Time // scheduled_start < To
	OnlyActive bool
}
