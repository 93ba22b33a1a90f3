package fakes

import (
	"context"
	"sync"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// GuideSelector заглушка стратегии подбора гидов
type GuideSelector struct {
	mu          sync.Mutex
	Assignments []domain.Assignment
	Err         error
	Calls       int
	PartySizes  []int
}

func (s *GuideSelector) SelectGuides(ctx context.Context, scheduleID int64, partySize int) ([]domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	s.PartySizes = append(s.PartySizes, partySize)
	if s.Err != nil {
		return nil, s.Err
	}

	result := make([]domain.Assignment, len(s.Assignments))
	for i, a := range s.Assignments {
		a.ScheduleID = scheduleID
		result[i] = a
	}
	return result, nil
}
