package guides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	guideRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/guide"
	"github.com/m04kA/TourOps-BookingService/internal/service/guides/models"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// Service сервис гидов
type Service struct {
	guideRepo GuideRepository
	txManager TransactionManager
	location  *time.Location
	logger    Logger
}

// NewService создает новый экземпляр сервиса гидов
func NewService(guideRepo GuideRepository, txManager TransactionManager, location *time.Location, logger Logger) *Service {
	return &Service{
		guideRepo: guideRepo,
		txManager: txManager,
		location:  location,
		logger:    logger,
	}
}

// List получает страницу гидов
func (s *Service) List(ctx context.Context, req *models.ListGuidesRequest) (*models.GuideListResponse, error) {
	page, limit := domain.NormalizePage(req.Page, req.Limit)

	list, total, err := s.guideRepo.List(ctx, domain.GuidesFilter{Status: req.Status, Page: page, Limit: limit})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuideList(list, page, limit, total), nil
}

// GetByID получает гида по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuideResponse, error) {
	g, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainGuide(g), nil
}

// ListLanguages возвращает справочник активных языков
func (s *Service) ListLanguages(ctx context.Context) ([]models.LanguageResponse, error) {
	list, err := s.guideRepo.ListLanguages(ctx, true)
	if err != nil {
		s.logger.Error("ListLanguages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLanguages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLanguages(list), nil
}

// Create создает гида вместе с набором языков
func (s *Service) Create(ctx context.Context, req *models.CreateGuideRequest) (*models.GuideResponse, error) {
	s.logger.Info("Create: creating guide name=%q", req.Name)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var guideID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.guideRepo.Create(ctx, req.ToDomainGuide())
		if err != nil {
			return s.mapError("Create", 0, err)
		}
		guideID = created.ID

		if len(req.LanguageIDs) > 0 {
			if err := s.guideRepo.SetLanguages(ctx, guideID, req.LanguageIDs); err != nil {
				return s.mapError("Create", guideID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created guide id=%d", guideID)
	return s.GetByID(ctx, guideID)
}

// Update частично обновляет гида
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGuideRequest) (*models.GuideResponse, error) {
	s.logger.Info("Update: updating guide id=%d", id)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for guide id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		g, err := s.guideRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapError("Update", id, err)
		}

		req.ApplyTo(g)
		if err := s.guideRepo.Update(ctx, g); err != nil {
			return s.mapError("Update", id, err)
		}

		if req.LanguageIDs != nil {
			if err := s.guideRepo.SetLanguages(ctx, id, *req.LanguageIDs); err != nil {
				return s.mapError("Update", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет гида вместе с его назначениями
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.guideRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	s.logger.Info("Delete: successfully deleted guide id=%d", id)
	return nil
}

// AvailabilityByDate возвращает занятость активных гидов на дату YYYY-MM-DD
// Гид свободен, если у него нет назначений на активные проведения этого дня
func (s *Service) AvailabilityByDate(ctx context.Context, date string) ([]models.GuideAvailabilityResponse, error) {
	start, end, err := domain.DayBounds(date, s.location)
	if err != nil {
		s.logger.Warn("AvailabilityByDate: invalid date %q", date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	loads, err := s.guideRepo.ListLoad(ctx, start, end)
	if err != nil {
		s.logger.Error("AvailabilityByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AvailabilityByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLoads(loads), nil
}

// AvailableLeaders возвращает свободных на дату гидов, способных вести группу partySize
func (s *Service) AvailableLeaders(ctx context.Context, date string, partySize int) ([]models.GuideResponse, error) {
	start, end, err := domain.DayBounds(date, s.location)
	if err != nil {
		s.logger.Warn("AvailableLeaders: invalid date %q", date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if partySize <= 0 {
		s.logger.Warn("AvailableLeaders: invalid party size %d", partySize)
		return nil, fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	free, err := s.guideRepo.ListAvailable(ctx, start, end, 0)
	if err != nil {
		s.logger.Error("AvailableLeaders: repository error: %v", err)
		return nil, fmt.Errorf("%w: AvailableLeaders - repository error: %v", ErrInternal, err)
	}

	result := make([]models.GuideResponse, 0, len(free))
	for _, g := range free {
		if g.CanLead(partySize) {
			result = append(result, *models.FromDomainGuide(g))
		}
	}

	s.logger.Info("AvailableLeaders: %d of %d free guides can lead %d people on %s", len(result), len(free), partySize, date)
	return result, nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, guideRepo.ErrGuideNotFound):
		s.logger.Warn("%s: guide id=%d not found", op, id)
		return ErrGuideNotFound
	case errors.Is(err, guideRepo.ErrLanguageNotFound):
		s.logger.Warn("%s: unknown language for guide id=%d", op, id)
		return ErrLanguageNotFound
	default:
		s.logger.Error("%s: repository error for guide id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
