package bulk_create_schedules

import (
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	bulkCreateSchedules "github.com/m04kA/TourOps-BookingService/internal/usecase/bulk_create_schedules"
)

// BulkCreateRequest HTTP request model
type BulkCreateRequest struct {
	StartDate        string            `json:"startDate"` // "2026-06-01"
	EndDate          string            `json:"endDate"`   // "2026-06-30", включительно
	TimeSlots        []TimeSlotRequest `json:"timeSlots"`
	ValidateOverlaps *bool             `json:"validateOverlaps,omitempty"`
}

// TimeSlotRequest ежедневный слот
type TimeSlotRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Capacity  int    `json:"capacity"`
}

// BulkCreateResponse HTTP response model
type BulkCreateResponse struct {
	Created   int                       `json:"created"`
	Schedules []models.ScheduleResponse `json:"schedules"`
	Conflicts []ConflictResponse        `json:"conflicts"`
}

// ConflictResponse пропущенный кандидат
type ConflictResponse struct {
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Capacity   int    `json:"capacity"`
	Reason     string `json:"reason"`
	ScheduleID int64  `json:"scheduleId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkCreateRequest) ToUseCaseRequest(activityID int64) *bulkCreateSchedules.Request {
	slots := make([]bulkCreateSchedules.TimeSlot, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		slots = append(slots, bulkCreateSchedules.TimeSlot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Capacity:  s.Capacity,
		})
	}

	return &bulkCreateSchedules.Request{
		ActivityID:       activityID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		TimeSlots:        slots,
		ValidateOverlaps: r.ValidateOverlaps,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkCreateSchedules.Response) *BulkCreateResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			Date:       c.Date,
			StartTime:  c.TimeSlot.StartTime.String(),
			EndTime:    c.TimeSlot.EndTime.String(),
			Capacity:   c.TimeSlot.Capacity,
			Reason:     c.Reason,
			ScheduleID: c.ScheduleID,
		})
	}

	return &BulkCreateResponse{
		Created:   resp.Created,
		Schedules: models.FromDomainSchedules(resp.Schedules),
		Conflicts: conflicts,
	}
}

// PartialDetails детали ответа 500, когда часть проведений уже создана
func PartialDetails(resp *bulkCreateSchedules.Response) map[string]interface{} {
	ids := make([]int64, 0, len(resp.Schedules))
	for _, s := range resp.Schedules {
		ids = append(ids, s.ID)
	}
	return map[string]interface{}{
		"created":     resp.Created,
		"scheduleIds": ids,
		"conflicts":   len(resp.Conflicts),
	}
}
