package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainBooking(booking), nil
}

// List получает страницу бронирований
// Опционально фильтрует по статусу, проведению и компании
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	page, limit := domain.NormalizePage(req.Page, req.Limit)

	filter, err := req.ToDomainFilter(page, limit)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings, page, limit, total), nil
}

// Cancel отменяет бронирование и возвращает места проведению
// Повторная отмена отклоняется без второго списания
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingMutationResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	var (
		booking  *domain.Booking
		schedule *domain.Schedule
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return s.mapError("Cancel", id, err)
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d already cancelled", id)
			return ErrAlreadyCancelled
		}

		if _, err := s.scheduleRepo.GetByIDForUpdate(ctx, booking.ActivityScheduleID); err != nil {
			s.logger.Error("Cancel: failed to lock schedule id=%d: %v", booking.ActivityScheduleID, err)
			return fmt.Errorf("%w: Cancel - lock schedule: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.Cancel(ctx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				return ErrAlreadyCancelled
			}
			return s.mapError("Cancel", id, err)
		}

		schedule, err = s.scheduleRepo.AdjustBookedCount(ctx, booking.ActivityScheduleID, -booking.NumberOfPeople)
		if err != nil {
			s.logger.Error("Cancel: failed to release %d spaces on schedule id=%d: %v",
				booking.NumberOfPeople, booking.ActivityScheduleID, err)
			return fmt.Errorf("%w: Cancel - release spaces: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.BookingMutation("cancel")
	s.logger.Info("Cancel: successfully cancelled booking id=%d, released %d spaces on schedule id=%d",
		id, booking.NumberOfPeople, booking.ActivityScheduleID)
	return models.FromDomainMutation(booking, schedule), nil
}

// CommissionReport считает комиссии агентств по проведениям с началом в [dateFrom, dateTo]
// Даты берутся в часовом поясе сервиса, отмененные бронирования не учитываются
func (s *Service) CommissionReport(ctx context.Context, req *models.CommissionReportRequest) (*models.CommissionReportResponse, error) {
	from, err := time.ParseInLocation(domain.DateFormat, req.DateFrom, s.location)
	if err != nil {
		s.logger.Warn("CommissionReport: invalid dateFrom %q", req.DateFrom)
		return nil, fmt.Errorf("%w: dateFrom must be YYYY-MM-DD", ErrInvalidPeriod)
	}
	to, err := time.ParseInLocation(domain.DateFormat, req.DateTo, s.location)
	if err != nil {
		s.logger.Warn("CommissionReport: invalid dateTo %q", req.DateTo)
		return nil, fmt.Errorf("%w: dateTo must be YYYY-MM-DD", ErrInvalidPeriod)
	}
	if to.Before(from) {
		s.logger.Warn("CommissionReport: dateFrom %s is after dateTo %s", req.DateFrom, req.DateTo)
		return nil, fmt.Errorf("%w: dateFrom must not be after dateTo", ErrInvalidPeriod)
	}

	summaries, err := s.bookingRepo.CommissionsByPeriod(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("CommissionReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: CommissionReport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CommissionReport: %d companies for %s..%s", len(summaries), req.DateFrom, req.DateTo)
	return models.FromDomainCommissions(req.DateFrom, req.DateTo, summaries), nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
