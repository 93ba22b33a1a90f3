package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
)

// UseCase use case чтения доступности проведений
// Доступность всегда считается из текущего booked_count и не кешируется
type UseCase struct {
	scheduleRepo ScheduleRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		scheduleRepo: scheduleRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetAvailability возвращает вместимость, занятые и свободные места проведения
func (uc *UseCase) GetAvailability(ctx context.Context, scheduleID int64) (*domain.Availability, error) {
	schedule, err := uc.getSchedule(ctx, "GetAvailability", scheduleID)
	if err != nil {
		return nil, err
	}

	availability := domain.NewAvailability(schedule)
	return &availability, nil
}

// ListAvailability возвращает проведения с доступностью, отсортированные по времени начала
// Если указана активность, она должна существовать
func (uc *UseCase) ListAvailability(ctx context.Context, req *ListRequest) ([]domain.Availability, error) {
	uc.logger.Info("ListAvailability: activity=%v, %s..%s, onlyActive=%v, upcoming=%v",
		req.ActivityID, req.StartDate, req.EndDate, req.OnlyActive, req.Upcoming)

	// 1. Валидация и фильтр
	filter, err := buildFilter(req, uc.location, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("ListAvailability: validation failed: %v", err)
		return nil, err
	}

	var schedules []*domain.Schedule
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 2. Активность существует
		if req.ActivityID != nil {
			if _, err := uc.activityRepo.GetByID(txCtx, *req.ActivityID); err != nil {
				if errors.Is(err, activityRepo.ErrActivityNotFound) {
					uc.logger.Warn("ListAvailability: activity id=%d not found", *req.ActivityID)
					return ErrActivityNotFound
				}
				uc.logger.Error("ListAvailability: failed to get activity id=%d: %v", *req.ActivityID, err)
				return fmt.Errorf("%w: ListAvailability - get activity: %v", ErrInternal, err)
			}
		}

		// 3. Проведения по фильтру
		list, err := uc.scheduleRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("ListAvailability: failed to list schedules: %v", err)
			return fmt.Errorf("%w: ListAvailability - list schedules: %v", ErrInternal, err)
		}
		schedules = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Availability, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, domain.NewAvailability(s))
	}
	return result, nil
}

// Quote считает стоимость группы по ценам проведения, а при их отсутствии по ценам активности
func (uc *UseCase) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if err := validateQuote(req); err != nil {
		uc.logger.Warn("Quote: validation failed: %v", err)
		return nil, err
	}

	schedule, err := uc.getSchedule(ctx, "Quote", req.ScheduleID)
	if err != nil {
		return nil, err
	}

	activity, err := uc.activityRepo.GetByID(ctx, schedule.ActivityID)
	if err != nil {
		uc.logger.Error("Quote: failed to get activity id=%d: %v", schedule.ActivityID, err)
		return nil, fmt.Errorf("%w: Quote - get activity: %v", ErrInternal, err)
	}

	prices := schedule.EffectivePrices(activity.Prices())
	return &Quote{
		ScheduleID:      schedule.ID,
		Counts:          req.Counts(),
		Prices:          prices,
		TotalPrice:      domain.CalculateTotal(req.Counts(), prices),
		AvailableSpaces: schedule.AvailableSpaces(),
	}, nil
}

func (uc *UseCase) getSchedule(ctx context.Context, op string, id int64) (*domain.Schedule, error) {
	schedule, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("%s: schedule id=%d not found", op, id)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("%s: failed to get schedule id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get schedule: %v", ErrInternal, op, err)
	}
	return schedule, nil
}
