// Package guideselection локальная стратегия подбора гидов на проведение
package guideselection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
)

// Selector подбирает гидов из свободных на время проведения
//
// Кандидаты упорядочены по убыванию max_party_size, гиды без ограничения идут последними
// и покрывают весь оставшийся состав группы. Первый выбранный гид становится лидером.
type Selector struct {
	scheduleRepo ScheduleRepository
	guideRepo    GuideRepository
	logger       Logger
}

// NewSelector создает локальную стратегию подбора
func NewSelector(scheduleRepo ScheduleRepository, guideRepo GuideRepository, logger Logger) *Selector {
	return &Selector{
		scheduleRepo: scheduleRepo,
		guideRepo:    guideRepo,
		logger:       logger,
	}
}

// SelectGuides возвращает набор назначений, покрывающий partySize
func (s *Selector) SelectGuides(ctx context.Context, scheduleID int64, partySize int) ([]domain.Assignment, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("%w: SelectGuides - get schedule: %v", ErrInternal, err)
	}

	candidates, err := s.guideRepo.ListAvailable(ctx, schedule.ScheduledStart, schedule.ScheduledEnd, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%w: SelectGuides - list available guides: %v", ErrInternal, err)
	}

	picked := pick(candidates, partySize)
	if picked == nil {
		s.logger.Warn("SelectGuides: %d free guides cannot cover party of %d for schedule id=%d",
			len(candidates), partySize, scheduleID)
		return nil, ErrNoGuidesAvailable
	}

	result := make([]domain.Assignment, 0, len(picked))
	for i, g := range picked {
		result = append(result, domain.Assignment{
			ScheduleID: scheduleID,
			GuideID:    g.ID,
			GuideName:  g.Name,
			IsLeader:   i == 0,
		})
	}

	s.logger.Info("SelectGuides: picked %d guides for schedule id=%d party=%d", len(result), scheduleID, partySize)
	return result, nil
}

// pick набирает гидов по порядку, пока группа не покрыта; nil если покрыть нельзя
func pick(candidates []*domain.Guide, partySize int) []*domain.Guide {
	if len(candidates) == 0 {
		return nil
	}

	remaining := partySize
	picked := make([]*domain.Guide, 0, 1)
	for _, g := range candidates {
		picked = append(picked, g)
		if g.MaxPartySize == nil {
			return picked
		}
		remaining -= g.Capacity()
		if remaining <= 0 {
			return picked
		}
	}
	return nil
}
