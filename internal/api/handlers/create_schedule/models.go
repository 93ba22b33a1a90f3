package create_schedule

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	createSchedule "github.com/m04kA/TourOps-BookingService/internal/usecase/create_schedule"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ActivityID     int64               `json:"activityId"`
	ScheduledStart time.Time           `json:"scheduledStart"` // RFC3339
	ScheduledEnd   time.Time           `json:"scheduledEnd"`   // RFC3339
	Capacity       *int                `json:"capacity,omitempty"`
	Status         *bool               `json:"status,omitempty"`
	AdultPrice     *float64            `json:"adultPrice,omitempty"`
	ChildPrice     *float64            `json:"childPrice,omitempty"`
	SeniorPrice    *float64            `json:"seniorPrice,omitempty"`
	Guides         []AssignmentRequest `json:"guides,omitempty"`
	AutoAssign     bool                `json:"autoAssign"`
}

// AssignmentRequest гид в составе проведения
type AssignmentRequest struct {
	GuideID  int64 `json:"guideId"`
	IsLeader bool  `json:"isLeader"`
}

// CreateScheduleResponse HTTP response model
type CreateScheduleResponse struct {
	models.ScheduleResponse
	AutoAssignError *string `json:"autoAssignError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest() *createSchedule.Request {
	assignments := make([]domain.Assignment, 0, len(r.Guides))
	for _, g := range r.Guides {
		assignments = append(assignments, domain.Assignment{GuideID: g.GuideID, IsLeader: g.IsLeader})
	}

	return &createSchedule.Request{
		ActivityID:     r.ActivityID,
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		Capacity:       r.Capacity,
		IsActive:       r.Status,
		AdultPrice:     r.AdultPrice,
		ChildPrice:     r.ChildPrice,
		SeniorPrice:    r.SeniorPrice,
		Assignments:    assignments,
		AutoAssign:     r.AutoAssign,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *CreateScheduleResponse {
	schedule := models.FromDomainSchedule(resp.Schedule)
	schedule.Guides = models.FromDomainAssignments(resp.Assignments)

	result := &CreateScheduleResponse{ScheduleResponse: *schedule}
	if resp.AutoAssignError != nil {
		msg := resp.AutoAssignError.Error()
		result.AutoAssignError = &msg
	}
	return result
}
