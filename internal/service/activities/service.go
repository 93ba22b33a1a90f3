package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	"github.com/m04kA/TourOps-BookingService/internal/service/activities/models"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// Service сервис каталога активностей
type Service struct {
	activityRepo ActivityRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса активностей
func NewService(
	activityRepo ActivityRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListTypes возвращает справочник типов активностей
func (s *Service) ListTypes(ctx context.Context) ([]models.ActivityTypeResponse, error) {
	list, err := s.activityRepo.ListTypes(ctx)
	if err != nil {
		s.logger.Error("ListTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTypes - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainActivityTypes(list), nil
}

// GetType получает тип активности по ID
func (s *Service) GetType(ctx context.Context, id int64) (*models.ActivityTypeResponse, error) {
	t, err := s.activityRepo.GetTypeByID(ctx, id)
	if err != nil {
		return nil, s.mapTypeError("GetType", id, err)
	}
	return models.FromDomainActivityType(t), nil
}

// CreateType создает тип активности
func (s *Service) CreateType(ctx context.Context, req *models.CreateActivityTypeRequest) (*models.ActivityTypeResponse, error) {
	s.logger.Info("CreateType: creating activity type code=%s", req.Code)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("CreateType: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.activityRepo.CreateType(ctx, &domain.ActivityType{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, activityRepo.ErrDuplicateTypeCode) {
			s.logger.Warn("CreateType: code=%s already exists", req.Code)
			return nil, ErrDuplicateTypeCode
		}
		s.logger.Error("CreateType: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateType: successfully created activity type id=%d", created.ID)
	return models.FromDomainActivityType(created), nil
}

// UpdateType частично обновляет тип активности
func (s *Service) UpdateType(ctx context.Context, id int64, req *models.UpdateActivityTypeRequest) (*models.ActivityTypeResponse, error) {
	s.logger.Info("UpdateType: updating activity type id=%d", id)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("UpdateType: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t, err := s.activityRepo.GetTypeByID(ctx, id)
	if err != nil {
		return nil, s.mapTypeError("UpdateType", id, err)
	}

	req.ApplyTo(t)

	if err := s.activityRepo.UpdateType(ctx, t); err != nil {
		if errors.Is(err, activityRepo.ErrDuplicateTypeCode) {
			return nil, ErrDuplicateTypeCode
		}
		return nil, s.mapTypeError("UpdateType", id, err)
	}

	s.logger.Info("UpdateType: successfully updated activity type id=%d", id)
	return models.FromDomainActivityType(t), nil
}

// List получает страницу активностей
func (s *Service) List(ctx context.Context, req *models.ListActivitiesRequest) (*models.ActivityListResponse, error) {
	page, limit := domain.NormalizePage(req.Page, req.Limit)

	list, total, err := s.activityRepo.List(ctx, domain.ActivitiesFilter{
		Status: req.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivityList(list, page, limit, total), nil
}

// GetByID получает активность по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error) {
	a, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapActivityError("GetByID", id, err)
	}
	return models.FromDomainActivity(a), nil
}

// Create создает активность
// Тип активности должен существовать
func (s *Service) Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Create: creating activity title=%q type=%d", req.Title, req.ActivityTypeID)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.activityRepo.GetTypeByID(ctx, req.ActivityTypeID); err != nil {
		return nil, s.mapTypeError("Create", req.ActivityTypeID, err)
	}

	created, err := s.activityRepo.Create(ctx, req.ToDomainActivity())
	if err != nil {
		return nil, s.mapActivityError("Create", 0, err)
	}

	result, err := s.activityRepo.GetByID(ctx, created.ID)
	if err != nil {
		return nil, s.mapActivityError("Create", created.ID, err)
	}

	s.logger.Info("Create: successfully created activity id=%d", created.ID)
	return models.FromDomainActivity(result), nil
}

// Update частично обновляет активность
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Update: updating activity id=%d", id)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	a, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapActivityError("Update", id, err)
	}

	if req.ActivityTypeID != nil && *req.ActivityTypeID != a.ActivityTypeID {
		if _, err := s.activityRepo.GetTypeByID(ctx, *req.ActivityTypeID); err != nil {
			return nil, s.mapTypeError("Update", *req.ActivityTypeID, err)
		}
	}

	req.ApplyTo(a)

	if err := s.activityRepo.Update(ctx, a); err != nil {
		return nil, s.mapActivityError("Update", id, err)
	}

	return s.GetByID(ctx, id)
}

// ToggleStatus переключает статус активности
func (s *Service) ToggleStatus(ctx context.Context, id int64) (*models.ActivityResponse, error) {
	a, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapActivityError("ToggleStatus", id, err)
	}

	a.IsActive = !a.IsActive
	if err := s.activityRepo.Update(ctx, a); err != nil {
		return nil, s.mapActivityError("ToggleStatus", id, err)
	}

	s.logger.Info("ToggleStatus: activity id=%d status=%t", id, a.IsActive)
	return models.FromDomainActivity(a), nil
}

// Delete удаляет активность вместе с проведениями
// Запрещено, пока на проведениях есть неотмененные бронирования
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting activity id=%d", id)

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.activityRepo.GetByIDForUpdate(ctx, id); err != nil {
			return s.mapActivityError("Delete", id, err)
		}

		if err := s.scheduleRepo.LockByActivity(ctx, id); err != nil {
			s.logger.Error("Delete: failed to lock schedules of activity id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - lock schedules: %v", ErrInternal, err)
		}

		hasBookings, err := s.bookingRepo.HasActiveByActivity(ctx, id)
		if err != nil {
			s.logger.Error("Delete: failed to check bookings of activity id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - check bookings: %v", ErrInternal, err)
		}
		if hasBookings {
			s.logger.Warn("Delete: activity id=%d has active bookings", id)
			return ErrHasActiveBookings
		}

		if err := s.activityRepo.Delete(ctx, id); err != nil {
			return s.mapActivityError("Delete", id, err)
		}

		s.logger.Info("Delete: successfully deleted activity id=%d", id)
		return nil
	})
}

func (s *Service) mapActivityError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, activityRepo.ErrActivityNotFound):
		s.logger.Warn("%s: activity id=%d not found", op, id)
		return ErrActivityNotFound
	case errors.Is(err, activityRepo.ErrActivityTypeNotFound):
		s.logger.Warn("%s: activity type not found", op)
		return ErrActivityTypeNotFound
	default:
		s.logger.Error("%s: repository error for activity id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func (s *Service) mapTypeError(op string, id int64, err error) error {
	if errors.Is(err, activityRepo.ErrActivityTypeNotFound) {
		s.logger.Warn("%s: activity type id=%d not found", op, id)
		return ErrActivityTypeNotFound
	}
	s.logger.Error("%s: repository error for activity type id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
