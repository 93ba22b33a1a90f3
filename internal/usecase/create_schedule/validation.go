package create_schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityId must be positive", ErrInvalidInput)
	}

	if req.ScheduledStart.IsZero() || req.ScheduledEnd.IsZero() {
		return fmt.Errorf("%w: scheduledStart and scheduledEnd are required", ErrInvalidInput)
	}

	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return fmt.Errorf("%w: scheduledEnd must be after scheduledStart", ErrInvalidInput)
	}

	if req.Capacity != nil && *req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	prices := []struct {
		name  string
		value *float64
	}{
		{"adultPrice", req.AdultPrice},
		{"childPrice", req.ChildPrice},
		{"seniorPrice", req.SeniorPrice},
	}
	for _, p := range prices {
		if p.value != nil && *p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, p.name)
		}
	}

	switch err := domain.ValidateAssignments(req.Assignments); {
	case err == nil:
	case errors.Is(err, domain.ErrMultipleLeaders):
		return ErrLeaderConflict
	case errors.Is(err, domain.ErrDuplicateGuide):
		return ErrDuplicateGuide
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveCapacity вместимость проведения, по умолчанию размер группы активности
func resolveCapacity(capacity *int, activity *domain.Activity) int {
	if capacity != nil {
		return *capacity
	}
	return activity.PartySize
}
