package update_booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/booking"
	companyRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/company"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

const metricsOperation = "update"

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	activityRepo ActivityRepository
	companyRepo  CompanyRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	activityRepo ActivityRepository,
	companyRepo CompanyRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		activityRepo: activityRepo,
		companyRepo:  companyRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute применяет частичное изменение и полностью перепроверяет бронирование
//
// На том же проведении применяется разница new-old условным UPDATE.
// При переносе обе строки проведений блокируются в порядке id,
// старое освобождается, новое занимается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.ID)

	if req.ClearCompany && req.CompanyID != nil {
		return nil, fmt.Errorf("%w: companyId and clearCompany are mutually exclusive", ErrInvalidInput)
	}

	var (
		result *domain.Booking
		target *domain.Schedule
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		stored, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to lock booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to lock booking: %v", ErrInternal, err)
		}
		if !stored.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is cancelled", req.ID)
			return ErrBookingCancelled
		}

		merged := req.merge(stored)

		locked, err := uc.lockSchedules(txCtx, stored.ActivityScheduleID, merged.ActivityScheduleID)
		if err != nil {
			return err
		}
		target = locked[merged.ActivityScheduleID]
		moved := target.ID != stored.ActivityScheduleID

		// 1. Новое проведение должно быть активным
		if moved && !target.IsActive {
			uc.logger.Warn("UpdateBooking: target schedule id=%d is not active", target.ID)
			return ErrScheduleInactive
		}

		// 2. Имя клиента
		if merged.CustomerName, err = domain.NormalizeCustomerName(merged.CustomerName); err != nil {
			return invalid(ErrInvalidCustomerName, err)
		}

		// 3. Свободные места с учетом собственной группы
		available := availableFor(target, stored)
		if err := validateCapacity(merged.NumberOfPeople, available); err != nil {
			if errors.Is(err, ErrCapacityExceeded) {
				uc.metrics.CapacityRejected(metricsOperation)
				uc.logger.Warn("UpdateBooking: requested %d, available %d on schedule id=%d",
					merged.NumberOfPeople, available, target.ID)
			}
			return err
		}

		// 4. Категории
		if err := validateCounts(merged); err != nil {
			return err
		}

		// 5. Трансфер
		if merged.PassengerCount, err = domain.ResolvePassengerCount(merged.Transport, merged.PassengerCount); err != nil {
			return invalid(ErrPassengerCountRequired, err)
		}

		// 6. Комиссия компании
		if merged.CommissionPercentage, err = uc.resolveCommission(txCtx, req, stored, merged); err != nil {
			return err
		}

		if err := validateContacts(merged); err != nil {
			return err
		}

		if merged.Status, err = domain.ParseWritableStatus(req.Status, stored.Status); err != nil {
			return invalid(ErrInvalidStatus, err)
		}

		if moved || merged.Counts() != stored.Counts() {
			activity, err := uc.activityRepo.GetByID(txCtx, target.ActivityID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get activity id=%d: %v", target.ActivityID, err)
				return fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
			}
			merged.ApplyPrices(target.EffectivePrices(activity.Prices()))
		}

		if target, err = uc.moveSpaces(txCtx, stored, merged, target); err != nil {
			return err
		}

		if err := uc.bookingRepo.Update(txCtx, merged); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = merged
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.BookingMutation(metricsOperation)
	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, schedule id=%d available=%d",
		result.ID, target.ID, target.AvailableSpaces())

	return &Response{
		Booking:         result,
		AvailableSpaces: target.AvailableSpaces(),
	}, nil
}

// lockSchedules блокирует старое и новое проведение в порядке возрастания id
func (uc *UseCase) lockSchedules(ctx context.Context, oldID, newID int64) (map[int64]*domain.Schedule, error) {
	ids := []int64{oldID}
	if newID != oldID {
		ids = append(ids, newID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked := make(map[int64]*domain.Schedule, len(ids))
	for _, id := range ids {
		schedule, err := uc.scheduleRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) && id == newID {
				uc.logger.Warn("UpdateBooking: schedule id=%d not found", id)
				return nil, ErrScheduleNotFound
			}
			uc.logger.Error("UpdateBooking: failed to lock schedule id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to lock schedule: %v", ErrInternal, err)
		}
		locked[id] = schedule
	}
	return locked, nil
}

// moveSpaces применяет изменение занятых мест и возвращает актуальное целевое проведение
func (uc *UseCase) moveSpaces(ctx context.Context, stored, merged *domain.Booking, target *domain.Schedule) (*domain.Schedule, error) {
	if merged.ActivityScheduleID != stored.ActivityScheduleID {
		if _, err := uc.scheduleRepo.AdjustBookedCount(ctx, stored.ActivityScheduleID, -stored.NumberOfPeople); err != nil {
			uc.logger.Error("UpdateBooking: failed to release %d spaces on schedule id=%d: %v",
				stored.NumberOfPeople, stored.ActivityScheduleID, err)
			return nil, fmt.Errorf("%w: failed to release spaces: %v", ErrInternal, err)
		}
		return uc.adjust(ctx, target, merged.NumberOfPeople, target.AvailableSpaces())
	}

	delta := merged.NumberOfPeople - stored.NumberOfPeople
	if delta == 0 {
		return target, nil
	}
	return uc.adjust(ctx, target, delta, availableFor(target, stored))
}

func (uc *UseCase) adjust(ctx context.Context, target *domain.Schedule, delta, available int) (*domain.Schedule, error) {
	updated, err := uc.scheduleRepo.AdjustBookedCount(ctx, target.ID, delta)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotEnoughCapacity) {
			uc.metrics.CapacityRejected(metricsOperation)
			return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
				Requested: delta,
				Available: available,
			})
		}
		uc.logger.Error("UpdateBooking: failed to adjust spaces on schedule id=%d: %v", target.ID, err)
		return nil, fmt.Errorf("%w: failed to adjust spaces: %v", ErrInternal, err)
	}
	return updated, nil
}

// resolveCommission шаг 6: при смене компании или явной комиссии значение определяется заново
func (uc *UseCase) resolveCommission(ctx context.Context, req *Request, stored, merged *domain.Booking) (*float64, error) {
	if merged.CompanyID == nil {
		return nil, nil
	}
	if req.CommissionPercentage == nil && !req.companyChanged(stored) && stored.CommissionPercentage != nil {
		return stored.CommissionPercentage, nil
	}

	company, err := uc.companyRepo.GetByID(ctx, *merged.CompanyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("UpdateBooking: company id=%d not found", *merged.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get company id=%d: %v", *merged.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	value, err := domain.ResolveCommission(req.CommissionPercentage, company.CommissionPercentage)
	if err != nil {
		return nil, invalid(ErrInvalidCommission, err)
	}
	return ptr.Ptr(value), nil
}
