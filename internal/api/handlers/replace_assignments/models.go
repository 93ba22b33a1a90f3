package replace_assignments

import "github.com/m04kA/TourOps-BookingService/internal/domain"

// ReplaceAssignmentsRequest HTTP request model, пустой список снимает всех гидов
type ReplaceAssignmentsRequest struct {
	Guides []AssignmentRequest `json:"guides"`
}

// AssignmentRequest гид в составе проведения
type AssignmentRequest struct {
	GuideID  int64 `json:"guideId"`
	IsLeader bool  `json:"isLeader"`
}

// ToDomain конвертирует HTTP запрос в назначения
func (r *ReplaceAssignmentsRequest) ToDomain(scheduleID int64) []domain.Assignment {
	result := make([]domain.Assignment, 0, len(r.Guides))
	for _, g := range r.Guides {
		result = append(result, domain.Assignment{
			ScheduleID: scheduleID,
			GuideID:    g.GuideID,
			IsLeader:   g.IsLeader,
		})
	}
	return result
}
