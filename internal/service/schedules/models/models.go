package models

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// UpdateScheduleRequest частичное обновление проведения
type UpdateScheduleRequest struct {
	ScheduledStart *time.Time `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduledEnd,omitempty"`
	Capacity       *int       `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Status         *bool      `json:"status,omitempty"`
	AdultPrice     *float64   `json:"adultPrice,omitempty" validate:"omitempty,gte=0"`
	ChildPrice     *float64   `json:"childPrice,omitempty" validate:"omitempty,gte=0"`
	SeniorPrice    *float64   `json:"seniorPrice,omitempty" validate:"omitempty,gte=0"`
}

// ListSchedulesRequest параметры списка проведений активности
type ListSchedulesRequest struct {
	ActivityID int64
	From       *time.Time
	To         *time.Time
	OnlyActive bool
}

// AssignmentResponse назначенный гид
type AssignmentResponse struct {
	GuideID    int64     `json:"guideId"`
	GuideName  string    `json:"guideName,omitempty"`
	IsLeader   bool      `json:"isLeader"`
	AssignedAt time.Time `json:"assignedAt"`
}

// ScheduleResponse проведение с текущей доступностью
type ScheduleResponse struct {
	ID              int64                `json:"id"`
	ActivityID      int64                `json:"activityId"`
	ActivityTitle   string               `json:"activityTitle,omitempty"`
	ScheduledStart  time.Time            `json:"scheduledStart"`
	ScheduledEnd    time.Time            `json:"scheduledEnd"`
	Capacity        int                  `json:"capacity"`
	BookedCount     int                  `json:"bookedCount"`
	AvailableSpaces int                  `json:"availableSpaces"`
	Status          bool                 `json:"status"`
	AdultPrice      *float64             `json:"adultPrice,omitempty"`
	ChildPrice      *float64             `json:"childPrice,omitempty"`
	SeniorPrice     *float64             `json:"seniorPrice,omitempty"`
	Guides          []AssignmentResponse `json:"guides,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// ApplyTo накладывает переданные поля на проведение
func (r *UpdateScheduleRequest) ApplyTo(s *domain.Schedule) {
	if r.ScheduledStart != nil {
		s.ScheduledStart = *r.ScheduledStart
	}
	if r.ScheduledEnd != nil {
		s.ScheduledEnd = *r.ScheduledEnd
	}
	if r.Capacity != nil {
		s.Capacity = *r.Capacity
	}
	if r.Status != nil {
		s.IsActive = *r.Status
	}
	if r.AdultPrice != nil {
		s.AdultPrice = r.AdultPrice
	}
	if r.ChildPrice != nil {
		s.ChildPrice = r.ChildPrice
	}
	if r.SeniorPrice != nil {
		s.SeniorPrice = r.SeniorPrice
	}
}

// ChangesInterval возвращает true, если запрос двигает проведение во времени
func (r *UpdateScheduleRequest) ChangesInterval() bool {
	return r.ScheduledStart != nil || r.ScheduledEnd != nil
}

// FromDomainSchedule конвертирует проведение в ответ
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              s.ID,
		ActivityID:      s.ActivityID,
		ActivityTitle:   s.ActivityTitle,
		ScheduledStart:  s.ScheduledStart,
		ScheduledEnd:    s.ScheduledEnd,
		Capacity:        s.Capacity,
		BookedCount:     s.BookedCount,
		AvailableSpaces: s.AvailableSpaces(),
		Status:          s.IsActive,
		AdultPrice:      s.AdultPrice,
		ChildPrice:      s.ChildPrice,
		SeniorPrice:     s.SeniorPrice,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSchedules конвертирует список проведений
func FromDomainSchedules(list []*domain.Schedule) []ScheduleResponse {
	result := make([]ScheduleResponse, 0, len(list))
	for _, s := range list {
		result = append(result, *FromDomainSchedule(s))
	}
	return result
}

// FromDomainAssignments конвертирует назначения гидов
func FromDomainAssignments(list []domain.Assignment) []AssignmentResponse {
	result := make([]AssignmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, AssignmentResponse{
			GuideID:    a.GuideID,
			GuideName:  a.GuideName,
			IsLeader:   a.IsLeader,
			AssignedAt: a.AssignedAt,
		})
	}
	return result
}
