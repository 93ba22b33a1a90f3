package bulk_create_schedules

import (
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// validateRequest проверяет запрос целиком до первой вставки
func validateRequest(req *Request, loc *time.Location) (*plan, error) {
	if req.ActivityID <= 0 {
		return nil, fmt.Errorf("%w: activityId must be positive", ErrInvalidInput)
	}

	startDate, err := time.ParseInLocation(domain.DateFormat, req.StartDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidDates)
	}
	endDate, err := time.ParseInLocation(domain.DateFormat, req.EndDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidDates)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidDates)
	}

	if len(req.TimeSlots) == 0 {
		return nil, fmt.Errorf("%w: at least one time slot is required", ErrNoTimeSlots)
	}

	slots := make([]domain.TimeSlot, 0, len(req.TimeSlots))
	for i, s := range req.TimeSlots {
		slot, err := parseSlot(s)
		if err != nil {
			return nil, fmt.Errorf("%w: timeSlots[%d]: %v", ErrInvalidTimeSlot, i, err)
		}
		slots = append(slots, slot)
	}

	return &plan{startDate: startDate, endDate: endDate, slots: slots}, nil
}

func parseSlot(s TimeSlot) (domain.TimeSlot, error) {
	start, err := types.NewTimeStringFromString(s.StartTime)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("startTime: %w", err)
	}
	end, err := types.NewTimeStringFromString(s.EndTime)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("endTime: %w", err)
	}
	if !start.IsBefore(end) {
		return domain.TimeSlot{}, fmt.Errorf("startTime %s must be before endTime %s", start, end)
	}
	if s.Capacity <= 0 {
		return domain.TimeSlot{}, fmt.Errorf("capacity must be positive")
	}
	return domain.TimeSlot{StartTime: start, EndTime: end, Capacity: s.Capacity}, nil
}

// daysInRange количество календарных дней в [start, end] включительно
func daysInRange(start, end time.Time) int {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// candidates раскладывает план на пары (дата, слот) в порядке дат, затем слотов
func (p *plan) candidates() []candidate {
	result := make([]candidate, 0, daysInRange(p.startDate, p.endDate)*len(p.slots))
	for date := p.startDate; !date.After(p.endDate); date = date.AddDate(0, 0, 1) {
		for _, slot := range p.slots {
			start, end := slot.Bounds(date)
			result = append(result, candidate{date: date, slot: slot, start: start, end: end})
		}
	}
	return result
}
