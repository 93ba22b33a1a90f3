package assign_guides

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	guideRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/guide"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
)

// UseCase назначение гидов на проведение
type UseCase struct {
	scheduleRepo ScheduleRepository
	guideRepo    GuideRepository
	selector     GuideSelector
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	guideRepo GuideRepository,
	selector GuideSelector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		guideRepo:    guideRepo,
		selector:     selector,
		txManager:    txManager,
		logger:       logger,
	}
}

// Replace целиком заменяет набор гидов проведения
// Набор принимается полностью или отклоняется без изменений
func (uc *UseCase) Replace(ctx context.Context, scheduleID int64, assignments []domain.Assignment) ([]domain.Assignment, error) {
	uc.logger.Info("ReplaceAssignments: schedule id=%d, %d guides", scheduleID, len(assignments))

	if err := validateSet(assignments); err != nil {
		uc.logger.Warn("ReplaceAssignments: rejected set for schedule id=%d: %v", scheduleID, err)
		return nil, err
	}

	var result []domain.Assignment
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, scheduleID); err != nil {
			return uc.mapScheduleError("ReplaceAssignments", scheduleID, err)
		}

		stored, err := uc.store(txCtx, scheduleID, assignments)
		if err != nil {
			return err
		}
		result = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReplaceAssignments: schedule id=%d now has %d guides", scheduleID, len(result))
	return result, nil
}

// AutoAssign подбирает гидов стратегией, только если у проведения нет назначений
// Размер группы равен вместимости проведения
func (uc *UseCase) AutoAssign(ctx context.Context, scheduleID int64) ([]domain.Assignment, error) {
	uc.logger.Info("AutoAssign: schedule id=%d", scheduleID)

	schedule, err := uc.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, uc.mapScheduleError("AutoAssign", scheduleID, err)
	}

	if err := uc.ensureUnassigned(ctx, scheduleID); err != nil {
		return nil, err
	}

	// Стратегия может ходить во внешний сервис, поэтому вызывается вне транзакции
	selected, err := uc.selector.SelectGuides(ctx, scheduleID, schedule.Capacity)
	if err != nil {
		if errors.Is(err, domain.ErrNoGuidesAvailable) {
			uc.logger.Warn("AutoAssign: no guides available for schedule id=%d", scheduleID)
			return nil, ErrNoGuidesAvailable
		}
		uc.logger.Error("AutoAssign: selector failed for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: AutoAssign - select guides: %v", ErrInternal, err)
	}
	if len(selected) == 0 {
		return nil, ErrNoGuidesAvailable
	}

	if err := validateSet(selected); err != nil {
		uc.logger.Error("AutoAssign: selector returned invalid set for schedule id=%d: %v", scheduleID, err)
		return nil, err
	}

	var result []domain.Assignment
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, scheduleID); err != nil {
			return uc.mapScheduleError("AutoAssign", scheduleID, err)
		}
		if err := uc.ensureUnassigned(txCtx, scheduleID); err != nil {
			return err
		}

		stored, err := uc.store(txCtx, scheduleID, selected)
		if err != nil {
			return err
		}
		result = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AutoAssign: assigned %d guides to schedule id=%d", len(result), scheduleID)
	return result, nil
}

// store проверяет гидов и сохраняет набор, вызывается внутри транзакции
func (uc *UseCase) store(ctx context.Context, scheduleID int64, assignments []domain.Assignment) ([]domain.Assignment, error) {
	if err := uc.ensureGuidesActive(ctx, assignments); err != nil {
		return nil, err
	}

	if err := uc.guideRepo.ReplaceAssignments(ctx, scheduleID, assignments); err != nil {
		switch {
		case errors.Is(err, guideRepo.ErrLeaderConflict):
			return nil, ErrLeaderConflict
		case errors.Is(err, guideRepo.ErrDuplicateAssignment):
			return nil, ErrDuplicateGuide
		case errors.Is(err, guideRepo.ErrGuideNotFound):
			return nil, ErrGuideNotFound
		default:
			uc.logger.Error("store: failed to replace assignments of schedule id=%d: %v", scheduleID, err)
			return nil, fmt.Errorf("%w: store - replace assignments: %v", ErrInternal, err)
		}
	}

	stored, err := uc.guideRepo.ListAssignments(ctx, scheduleID)
	if err != nil {
		uc.logger.Error("store: failed to list assignments of schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: store - list assignments: %v", ErrInternal, err)
	}
	return stored, nil
}

func (uc *UseCase) ensureUnassigned(ctx context.Context, scheduleID int64) error {
	existing, err := uc.guideRepo.ListAssignments(ctx, scheduleID)
	if err != nil {
		uc.logger.Error("AutoAssign: failed to list assignments of schedule id=%d: %v", scheduleID, err)
		return fmt.Errorf("%w: AutoAssign - list assignments: %v", ErrInternal, err)
	}
	if len(existing) > 0 {
		uc.logger.Warn("AutoAssign: schedule id=%d already has %d guides", scheduleID, len(existing))
		return ErrAlreadyAssigned
	}
	return nil
}

func (uc *UseCase) ensureGuidesActive(ctx context.Context, assignments []domain.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.GuideID)
	}

	guides, err := uc.guideRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("store: failed to load guides: %v", err)
		return fmt.Errorf("%w: store - load guides: %v", ErrInternal, err)
	}

	active := make(map[int64]bool, len(guides))
	for _, g := range guides {
		active[g.ID] = g.IsActive
	}
	for _, id := range ids {
		if !active[id] {
			uc.logger.Warn("store: guide id=%d not found or inactive", id)
			return fmt.Errorf("%w: guide id=%d", ErrGuideNotFound, id)
		}
	}
	return nil
}

func (uc *UseCase) mapScheduleError(op string, id int64, err error) error {
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Warn("%s: schedule id=%d not found", op, id)
		return ErrScheduleNotFound
	}
	uc.logger.Error("%s: failed to get schedule id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - get schedule: %v", ErrInternal, op, err)
}

// validateSet проверяет правило одного лидера и уникальность гидов
func validateSet(assignments []domain.Assignment) error {
	err := domain.ValidateAssignments(assignments)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrMultipleLeaders):
		return ErrLeaderConflict
	case errors.Is(err, domain.ErrDuplicateGuide):
		return ErrDuplicateGuide
	default:
		return err
	}
}
