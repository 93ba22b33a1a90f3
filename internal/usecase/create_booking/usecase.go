package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	companyRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/company"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

const metricsOperation = "create"

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка мест и списание выполняются в одной транзакции под блокировкой строки проведения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: schedule=%d, people=%d, company=%v",
		req.ActivityScheduleID, req.NumberOfPeople, req.CompanyID)

	var (
		result   *domain.Booking
		schedule *domain.Schedule
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Проведение существует и активно, строка заблокирована до конца транзакции
		locked, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, req.ActivityScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: schedule id=%d not found", req.ActivityScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock schedule id=%d: %v", req.ActivityScheduleID, err)
			return fmt.Errorf("%w: failed to lock schedule: %v", ErrInternal, err)
		}
		if err := validateSchedule(locked); err != nil {
			uc.logger.Warn("CreateBooking: schedule id=%d is not active", locked.ID)
			return err
		}

		// 2. Имя клиента
		customerName, err := domain.NormalizeCustomerName(req.CustomerName)
		if err != nil {
			return invalid(ErrInvalidCustomerName, err)
		}

		// 3. Свободные места
		if err := validateCapacity(locked, req.NumberOfPeople); err != nil {
			if errors.Is(err, ErrCapacityExceeded) {
				uc.metrics.CapacityRejected(metricsOperation)
				uc.logger.Warn("CreateBooking: requested %d, available %d on schedule id=%d",
					req.NumberOfPeople, locked.AvailableSpaces(), locked.ID)
			}
			return err
		}

		// 4. Категории
		if err := validateCounts(req.Counts(), req.NumberOfPeople); err != nil {
			return err
		}

		// 5. Трансфер
		passengerCount, err := domain.ResolvePassengerCount(req.Transport, req.PassengerCount)
		if err != nil {
			return invalid(ErrPassengerCountRequired, err)
		}

		// 6. Комиссия компании
		commission, err := uc.resolveCommission(txCtx, req.CompanyID, req.CommissionPercentage)
		if err != nil {
			return err
		}

		if err := validateContacts(req); err != nil {
			return err
		}

		status, err := domain.ParseWritableStatus(req.Status, domain.StatusPending)
		if err != nil {
			return invalid(ErrInvalidStatus, err)
		}

		activity, err := uc.activityRepo.GetByID(txCtx, locked.ActivityID)
		if err != nil {
			if errors.Is(err, activityRepo.ErrActivityNotFound) {
				return fmt.Errorf("%w: activity id=%d of schedule is missing", ErrInternal, locked.ActivityID)
			}
			uc.logger.Error("CreateBooking: failed to get activity id=%d: %v", locked.ActivityID, err)
			return fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
		}

		// Списываем места условным UPDATE, затем сохраняем бронирование
		schedule, err = uc.scheduleRepo.AdjustBookedCount(txCtx, locked.ID, req.NumberOfPeople)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrNotEnoughCapacity) {
				uc.metrics.CapacityRejected(metricsOperation)
				return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
					Requested: req.NumberOfPeople,
					Available: locked.AvailableSpaces(),
				})
			}
			uc.logger.Error("CreateBooking: failed to reserve spaces on schedule id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to reserve spaces: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			ActivityScheduleID:   locked.ID,
			CompanyID:            req.CompanyID,
			Transport:            req.Transport,
			PassengerCount:       passengerCount,
			NumberOfPeople:       req.NumberOfPeople,
			AdultCount:           req.AdultCount,
			ChildCount:           req.ChildCount,
			SeniorCount:          req.SeniorCount,
			CommissionPercentage: commission,
			CustomerName:         customerName,
			CustomerEmail:        req.CustomerEmail,
			CustomerPhone:        req.CustomerPhone,
			Status:               status,
			CreatedBy:            req.CreatedBy,
		}
		booking.ApplyPrices(locked.EffectivePrices(activity.Prices()))

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.BookingMutation(metricsOperation)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, schedule id=%d available=%d",
		result.ID, schedule.ID, schedule.AvailableSpaces())

	return &Response{
		Booking:         result,
		AvailableSpaces: schedule.AvailableSpaces(),
	}, nil
}

// resolveCommission шаг 6: комиссия определяется только для бронирований компании
func (uc *UseCase) resolveCommission(ctx context.Context, companyID *int64, explicit *float64) (*float64, error) {
	if companyID == nil {
		return nil, nil
	}

	company, err := uc.companyRepo.GetByID(ctx, *companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("CreateBooking: company id=%d not found", *companyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get company id=%d: %v", *companyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	value, err := domain.ResolveCommission(explicit, company.CommissionPercentage)
	if err != nil {
		return nil, invalid(ErrInvalidCommission, err)
	}
	return ptr.Ptr(value), nil
}
