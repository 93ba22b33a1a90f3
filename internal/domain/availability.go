package domain

import "time"

// Availability производная информация о доступности проведения
// Всегда вычисляется из текущего BookedCount и не кешируется
type Availability struct {
	ScheduleID      int64
	ActivityID      int64
	ActivityTitle   string
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	Capacity        int
	BookedCount     int
	AvailableSpaces int
	IsActive        bool
}

// NewAvailability строит доступность по проведению
func NewAvailability(s *Schedule) Availability {
	return Availability{
		ScheduleID:      s.ID,
		ActivityID:      s.ActivityID,
		ActivityTitle:   s.ActivityTitle,
		ScheduledStart:  s.ScheduledStart,
		ScheduledEnd:    s.ScheduledEnd,
		Capacity:        s.Capacity,
		BookedCount:     s.BookedCount,
		AvailableSpaces: s.AvailableSpaces(),
		IsActive:        s.IsActive,
	}
}

// IsFull returns true if the schedule has no available spaces
func (a *Availability) IsFull() bool {
	return a.AvailableSpaces <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (a *Availability) OccupancyRate() float64 {
	if a.Capacity == 0 {
		return 0
	}
	return float64(a.BookedCount) / float64(a.Capacity) * 100
}
