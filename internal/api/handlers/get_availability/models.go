package get_availability

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ScheduleID      int64  `json:"scheduleId"`
	ActivityID      int64  `json:"activityId"`
	ActivityTitle   string `json:"activityTitle,omitempty"`
	ScheduledStart  string `json:"scheduledStart"`
	ScheduledEnd    string `json:"scheduledEnd"`
	Capacity        int    `json:"capacity"`
	BookedCount     int    `json:"bookedCount"`
	AvailableSpaces int    `json:"availableSpaces"`
	Status          bool   `json:"status"`
}

// FromDomain конвертирует доступность проведения в HTTP response
func FromDomain(a *domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ScheduleID:      a.ScheduleID,
		ActivityID:      a.ActivityID,
		ActivityTitle:   a.ActivityTitle,
		ScheduledStart:  a.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:    a.ScheduledEnd.Format(time.RFC3339),
		Capacity:        a.Capacity,
		BookedCount:     a.BookedCount,
		AvailableSpaces: a.AvailableSpaces,
		Status:          a.IsActive,
	}
}

// FromDomainList конвертирует список доступностей
func FromDomainList(list []domain.Availability) []AvailabilityResponse {
	result := make([]AvailabilityResponse, 0, len(list))
	for i := range list {
		result = append(result, *FromDomain(&list[i]))
	}
	return result
}
