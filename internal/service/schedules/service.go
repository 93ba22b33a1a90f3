package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/TourOps-BookingService/internal/service/schedules/models"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// Service сервис реестра проведений
type Service struct {
	scheduleRepo   ScheduleRepository
	activityRepo   ActivityRepository
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса проведений
func NewService(
	scheduleRepo ScheduleRepository,
	activityRepo ActivityRepository,
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		activityRepo:   activityRepo,
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByID получает проведение вместе с назначенными гидами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}

	assignments, err := s.assignmentRepo.ListAssignments(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list assignments for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list assignments: %v", ErrInternal, err)
	}

	resp := models.FromDomainSchedule(schedule)
	resp.Guides = models.FromDomainAssignments(assignments)
	return resp, nil
}

// ListByActivity возвращает проведения активности по возрастанию начала
func (s *Service) ListByActivity(ctx context.Context, req *models.ListSchedulesRequest) ([]models.ScheduleResponse, error) {
	if _, err := s.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("ListByActivity: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("ListByActivity: repository error for activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: ListByActivity - get activity: %v", ErrInternal, err)
	}

	list, err := s.scheduleRepo.List(ctx, domain.SchedulesFilter{
		ActivityID: &req.ActivityID,
		From:       req.From,
		To:         req.To,
		OnlyActive: req.OnlyActive,
	})
	if err != nil {
		s.logger.Error("ListByActivity: repository error for activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: ListByActivity - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedules(list), nil
}

// Update частично обновляет проведение
// Вместимость не может опуститься ниже числа занятых мест
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%d", id)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Schedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		schedule, err := s.scheduleRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return s.mapError("Update", id, err)
		}

		wasActive := schedule.IsActive
		req.ApplyTo(schedule)

		if !schedule.ScheduledEnd.After(schedule.ScheduledStart) {
			s.logger.Warn("Update: schedule id=%d end is not after start", id)
			return fmt.Errorf("%w: scheduledEnd must be after scheduledStart", ErrInvalidInput)
		}

		if schedule.Capacity < schedule.BookedCount {
			s.logger.Warn("Update: capacity=%d below booked=%d for schedule id=%d", schedule.Capacity, schedule.BookedCount, id)
			return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
				Requested: schedule.BookedCount,
				Available: schedule.Capacity,
			})
		}

		if schedule.IsActive && (req.ChangesInterval() || !wasActive) {
			if err := s.checkOverlap(ctx, "Update", schedule); err != nil {
				return err
			}
		}

		if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
			if errors.Is(err, scheduleRepo.ErrNotEnoughCapacity) {
				return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
					Requested: schedule.BookedCount,
					Available: schedule.Capacity,
				})
			}
			return s.mapError("Update", id, err)
		}

		result = schedule
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated schedule id=%d", id)
	return models.FromDomainSchedule(result), nil
}

// ToggleStatus переключает статус проведения
// Включение проверяет пересечение с другими активными проведениями
func (s *Service) ToggleStatus(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	var result *domain.Schedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		schedule, err := s.scheduleRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return s.mapError("ToggleStatus", id, err)
		}

		schedule.IsActive = !schedule.IsActive
		if schedule.IsActive {
			if err := s.checkOverlap(ctx, "ToggleStatus", schedule); err != nil {
				return err
			}
		}

		if err := s.scheduleRepo.UpdateStatus(ctx, id, schedule.IsActive); err != nil {
			return s.mapError("ToggleStatus", id, err)
		}

		result = schedule
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ToggleStatus: schedule id=%d status=%t", id, result.IsActive)
	return models.FromDomainSchedule(result), nil
}

// Delete удаляет проведение
// Запрещено, пока есть неотмененные бронирования
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting schedule id=%d", id)

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.scheduleRepo.GetByIDForUpdate(ctx, id); err != nil {
			return s.mapError("Delete", id, err)
		}

		hasBookings, err := s.bookingRepo.HasActiveBySchedule(ctx, id)
		if err != nil {
			s.logger.Error("Delete: failed to check bookings of schedule id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - check bookings: %v", ErrInternal, err)
		}
		if hasBookings {
			s.logger.Warn("Delete: schedule id=%d has active bookings", id)
			return ErrHasActiveBookings
		}

		if err := s.scheduleRepo.Delete(ctx, id); err != nil {
			return s.mapError("Delete", id, err)
		}

		s.logger.Info("Delete: successfully deleted schedule id=%d", id)
		return nil
	})
}

func (s *Service) checkOverlap(ctx context.Context, op string, schedule *domain.Schedule) error {
	overlapping, err := s.scheduleRepo.FindOverlapping(ctx, schedule.ActivityID, schedule.ScheduledStart, schedule.ScheduledEnd, &schedule.ID)
	if err != nil {
		s.logger.Error("%s: failed to check overlaps for schedule id=%d: %v", op, schedule.ID, err)
		return fmt.Errorf("%w: %s - find overlapping: %v", ErrInternal, op, err)
	}
	if len(overlapping) > 0 {
		s.logger.Warn("%s: schedule id=%d overlaps schedule id=%d", op, schedule.ID, overlapping[0].ID)
		return fmt.Errorf("%w: conflicts with schedule %d", ErrScheduleOverlap, overlapping[0].ID)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Warn("%s: schedule id=%d not found", op, id)
		return ErrScheduleNotFound
	}
	s.logger.Error("%s: repository error for schedule id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
