package add_attendees

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
)

const metricsOperation = "add_attendees"

// UseCase use case для участников, пришедших без бронирования
// Места занимаются без записи в реестре бронирований
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case добавления участников
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddAttendees: schedule=%d, quantity=%d", req.ScheduleID, req.Quantity)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	var schedule *domain.Schedule
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем проведение
		locked, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("AddAttendees: schedule id=%d not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("AddAttendees: failed to lock schedule id=%d: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: Execute - lock schedule: %v", ErrInternal, err)
		}
		if !locked.IsActive {
			uc.logger.Warn("AddAttendees: schedule id=%d is not active", locked.ID)
			return ErrScheduleInactive
		}

		// 2. Условное увеличение booked_count
		updated, err := uc.scheduleRepo.AdjustBookedCount(txCtx, locked.ID, req.Quantity)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrNotEnoughCapacity) {
				uc.metrics.CapacityRejected(metricsOperation)
				uc.logger.Warn("AddAttendees: requested %d, available %d on schedule id=%d",
					req.Quantity, locked.AvailableSpaces(), locked.ID)
				return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
					Requested: req.Quantity,
					Available: locked.AvailableSpaces(),
				})
			}
			uc.logger.Error("AddAttendees: failed to adjust schedule id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: Execute - adjust booked count: %v", ErrInternal, err)
		}

		locked.BookedCount = updated.BookedCount
		locked.UpdatedAt = updated.UpdatedAt
		schedule = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingMutation(metricsOperation)
	uc.logger.Info("AddAttendees: schedule id=%d booked %d of %d", schedule.ID, schedule.BookedCount, schedule.Capacity)

	return &Response{
		Schedule:        schedule,
		AvailableSpaces: schedule.AvailableSpaces(),
	}, nil
}
