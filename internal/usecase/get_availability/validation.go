package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// buildFilter валидирует запрос списка и строит фильтр репозитория
// Конец диапазона включительный: фильтр получает полночь следующего дня
func buildFilter(req *ListRequest, loc *time.Location, now time.Time) (domain.SchedulesFilter, error) {
	filter := domain.SchedulesFilter{
		ActivityID: req.ActivityID,
		OnlyActive: req.OnlyActive,
	}

	if req.ActivityID != nil && *req.ActivityID <= 0 {
		return filter, fmt.Errorf("%w: activityId must be positive", ErrInvalidInput)
	}

	if req.StartDate != "" {
		from, err := time.ParseInLocation(domain.DateFormat, req.StartDate, loc)
		if err != nil {
			return filter, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.From = &from
	}

	if req.EndDate != "" {
		end, err := time.ParseInLocation(domain.DateFormat, req.EndDate, loc)
		if err != nil {
			return filter, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		if filter.From != nil && end.Before(*filter.From) {
			return filter, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}

	if req.Upcoming && (filter.From == nil || filter.From.Before(now)) {
		filter.From = &now
	}

	return filter, nil
}

// validateQuote проверяет категории расчета
func validateQuote(req *QuoteRequest) error {
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleId must be positive", ErrInvalidInput)
	}
	counts := req.Counts()
	if counts.HasNegative() {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidInput)
	}
	if counts.Sum() == 0 {
		return fmt.Errorf("%w: at least one person is required", ErrInvalidInput)
	}
	return nil
}
