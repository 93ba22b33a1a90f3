package bulk_create_schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	settingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/setting"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

// UseCase use case для массового создания проведений по диапазону дат и слотам
type UseCase struct {
	activityRepo ActivityRepository
	scheduleRepo ScheduleRepository
	settingRepo  SettingRepository
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Даты запроса интерпретируются в location, nil означает UTC
func NewUseCase(
	activityRepo ActivityRepository,
	scheduleRepo ScheduleRepository,
	settingRepo SettingRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		settingRepo:  settingRepo,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case массового создания
// Каждый кандидат проверяется и вставляется в своей транзакции под блокировкой активности.
// При внутренней ошибке посреди обхода вместе с ошибкой возвращается отчет
// об уже созданных проведениях, они остаются в базе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkCreateSchedules: activity=%d, %s..%s, slots=%d",
		req.ActivityID, req.StartDate, req.EndDate, len(req.TimeSlots))

	// 1. Валидация запроса целиком
	p, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("BulkCreateSchedules: validation failed: %v", err)
		return nil, err
	}

	// 2. Ограничение длины диапазона из системных настроек
	maxDays, err := uc.bulkMaxDays(ctx)
	if err != nil {
		return nil, err
	}
	if days := daysInRange(p.startDate, p.endDate); days > maxDays {
		uc.logger.Warn("BulkCreateSchedules: range of %d days exceeds limit %d", days, maxDays)
		return nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, maxDays)
	}

	// 3. Активность существует
	if _, err := uc.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		return nil, uc.mapActivityError(req.ActivityID, err)
	}

	// 4. Кандидаты создаются по одному, конфликты собираются
	validateOverlaps := ptr.Deref(req.ValidateOverlaps, true)
	resp := &Response{
		Schedules: make([]*domain.Schedule, 0),
		Conflicts: make([]Conflict, 0),
	}

	for _, c := range p.candidates() {
		created, conflict, err := uc.createCandidate(ctx, req.ActivityID, c, validateOverlaps)
		if err != nil {
			uc.logger.Error("BulkCreateSchedules: stopped after %d created: %v", resp.Created, err)
			uc.metrics.SchedulesAdded(resp.Created)
			uc.metrics.ScheduleConflictsFound(len(resp.Conflicts))
			return resp, err
		}
		if conflict != nil {
			resp.Conflicts = append(resp.Conflicts, Conflict{
				Date:       c.date.Format(domain.DateFormat),
				TimeSlot:   c.slot,
				Reason:     domain.ConflictReasonOverlap,
				ScheduleID: conflict.ID,
			})
			continue
		}
		resp.Schedules = append(resp.Schedules, created)
		resp.Created++
	}

	uc.metrics.SchedulesAdded(resp.Created)
	uc.metrics.ScheduleConflictsFound(len(resp.Conflicts))

	uc.logger.Info("BulkCreateSchedules: activity=%d, created=%d, conflicts=%d",
		req.ActivityID, resp.Created, len(resp.Conflicts))

	return resp, nil
}

// createCandidate атомарно проверяет пересечения и вставляет одно проведение
// Возвращает созданное проведение либо существующее, с которым кандидат пересекся
func (uc *UseCase) createCandidate(
	ctx context.Context,
	activityID int64,
	c candidate,
	validateOverlaps bool,
) (*domain.Schedule, *domain.Schedule, error) {
	var created, conflict *domain.Schedule

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.activityRepo.GetByIDForUpdate(txCtx, activityID); err != nil {
			return uc.mapActivityError(activityID, err)
		}

		if validateOverlaps {
			overlapping, err := uc.scheduleRepo.FindOverlapping(txCtx, activityID, c.start, c.end, nil)
			if err != nil {
				return fmt.Errorf("%w: createCandidate - find overlapping: %v", ErrInternal, err)
			}
			if len(overlapping) > 0 {
				conflict = overlapping[0]
				return nil
			}
		}

		schedule, err := uc.scheduleRepo.Create(txCtx, &domain.Schedule{
			ActivityID:     activityID,
			ScheduledStart: c.start,
			ScheduledEnd:   c.end,
			Capacity:       c.slot.Capacity,
			IsActive:       true,
		})
		if err != nil {
			return fmt.Errorf("%w: createCandidate - create schedule: %v", ErrInternal, err)
		}
		created = schedule
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, conflict, nil
}

// bulkMaxDays читает schedules.bulk_max_days, при отсутствии или мусоре используется значение по умолчанию
func (uc *UseCase) bulkMaxDays(ctx context.Context) (int, error) {
	setting, err := uc.settingRepo.GetByKey(ctx, domain.SettingBulkMaxDays)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return domain.DefaultBulkMaxDays, nil
		}
		uc.logger.Error("BulkCreateSchedules: failed to read setting %s: %v", domain.SettingBulkMaxDays, err)
		return 0, fmt.Errorf("%w: bulkMaxDays - get setting: %v", ErrInternal, err)
	}

	days, err := setting.IntValue()
	if err != nil || days <= 0 {
		uc.logger.Warn("BulkCreateSchedules: setting %s=%q is not a positive integer, using %d",
			domain.SettingBulkMaxDays, setting.Value, domain.DefaultBulkMaxDays)
		return domain.DefaultBulkMaxDays, nil
	}
	return days, nil
}

func (uc *UseCase) mapActivityError(id int64, err error) error {
	if errors.Is(err, activityRepo.ErrActivityNotFound) {
		uc.logger.Warn("BulkCreateSchedules: activity id=%d not found", id)
		return ErrActivityNotFound
	}
	uc.logger.Error("BulkCreateSchedules: failed to get activity id=%d: %v", id, err)
	return fmt.Errorf("%w: get activity: %v", ErrInternal, err)
}
