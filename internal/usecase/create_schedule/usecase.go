package create_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	"github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

// UseCase use case для создания одного проведения активности
type UseCase struct {
	activityRepo ActivityRepository
	scheduleRepo ScheduleRepository
	assigner     GuideAssigner
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	activityRepo ActivityRepository,
	scheduleRepo ScheduleRepository,
	assigner GuideAssigner,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		assigner:     assigner,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания проведения
// Явные назначения сохраняются в той же транзакции, автоназначение выполняется после фиксации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: activity=%d, start=%s, end=%s, guides=%d, autoAssign=%v",
		req.ActivityID, req.ScheduledStart.Format(time.RFC3339),
		req.ScheduledEnd.Format(time.RFC3339), len(req.Assignments), req.AutoAssign)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Активность существует, ее строка заблокирована
		activity, err := uc.activityRepo.GetByIDForUpdate(txCtx, req.ActivityID)
		if err != nil {
			if errors.Is(err, activityRepo.ErrActivityNotFound) {
				uc.logger.Warn("CreateSchedule: activity id=%d not found", req.ActivityID)
				return ErrActivityNotFound
			}
			uc.logger.Error("CreateSchedule: failed to lock activity id=%d: %v", req.ActivityID, err)
			return fmt.Errorf("%w: Execute - lock activity: %v", ErrInternal, err)
		}

		schedule := &domain.Schedule{
			ActivityID:     activity.ID,
			ActivityTitle:  activity.Title,
			ScheduledStart: req.ScheduledStart,
			ScheduledEnd:   req.ScheduledEnd,
			Capacity:       resolveCapacity(req.Capacity, activity),
			IsActive:       ptr.Deref(req.IsActive, true),
			AdultPrice:     req.AdultPrice,
			ChildPrice:     req.ChildPrice,
			SeniorPrice:    req.SeniorPrice,
		}

		// 3. Пересечения проверяются только для активного проведения
		if schedule.IsActive {
			overlapping, err := uc.scheduleRepo.FindOverlapping(txCtx, activity.ID, schedule.ScheduledStart, schedule.ScheduledEnd, nil)
			if err != nil {
				uc.logger.Error("CreateSchedule: failed to check overlaps: %v", err)
				return fmt.Errorf("%w: Execute - find overlapping: %v", ErrInternal, err)
			}
			if len(overlapping) > 0 {
				uc.metrics.ScheduleConflictsFound(1)
				uc.logger.Warn("CreateSchedule: overlaps schedule id=%d of activity id=%d", overlapping[0].ID, activity.ID)
				return fmt.Errorf("%w: schedule id=%d", ErrScheduleOverlap, overlapping[0].ID)
			}
		}

		// 4. Сохраняем проведение
		created, err := uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: Execute - create schedule: %v", ErrInternal, err)
		}
		resp.Schedule = created

		// 5. Явные назначения гидов
		if len(req.Assignments) > 0 {
			assignments, err := uc.assigner.Replace(txCtx, created.ID, req.Assignments)
			if err != nil {
				return uc.mapAssignError(err)
			}
			resp.Assignments = assignments
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SchedulesAdded(1)

	// 6. Автоназначение не откатывает созданное проведение
	if len(req.Assignments) == 0 && req.AutoAssign {
		assignments, err := uc.assigner.AutoAssign(ctx, resp.Schedule.ID)
		if err != nil {
			uc.logger.Warn("CreateSchedule: auto assign failed for schedule id=%d: %v", resp.Schedule.ID, err)
			resp.AutoAssignError = err
		} else {
			resp.Assignments = assignments
		}
	}

	if resp.Assignments == nil {
		resp.Assignments = []domain.Assignment{}
	}

	uc.logger.Info("CreateSchedule: created schedule id=%d with %d guides", resp.Schedule.ID, len(resp.Assignments))
	return resp, nil
}

func (uc *UseCase) mapAssignError(err error) error {
	switch {
	case errors.Is(err, assign_guides.ErrGuideNotFound):
		return fmt.Errorf("%w: %v", ErrGuideNotFound, err)
	case errors.Is(err, assign_guides.ErrLeaderConflict):
		return ErrLeaderConflict
	case errors.Is(err, assign_guides.ErrDuplicateGuide):
		return ErrDuplicateGuide
	default:
		uc.logger.Error("CreateSchedule: failed to assign guides: %v", err)
		return fmt.Errorf("%w: Execute - assign guides: %v", ErrInternal, err)
	}
}
