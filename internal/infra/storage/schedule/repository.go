package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/pgerrors"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

const table = "activity_schedules"

var columns = []string{
	"s.id",
	"s.activity_id",
	"a.title",
	"s.scheduled_start",
	"s.scheduled_end",
	"s.capacity",
	"s.booked_count",
	"s.status",
	"s.adult_price",
	"s.child_price",
	"s.senior_price",
	"s.created_at",
	"s.updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий проведений активностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория проведений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectSchedules() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table + " s").
		Join("activities a ON a.id = s.activity_id")
}

// Create создает проведение
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"activity_id",
			"scheduled_start",
			"scheduled_end",
			"capacity",
			"booked_count",
			"status",
			"adult_price",
			"child_price",
			"senior_price",
		).
		Values(
			s.ActivityID,
			s.ScheduledStart,
			s.ScheduledEnd,
			s.Capacity,
			s.BookedCount,
			s.IsActive,
			s.AdultPrice,
			s.ChildPrice,
			s.SeniorPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает проведение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает проведение и блокирует его строку до конца транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectSchedules().Where(squirrel.Eq{"s.id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// List получает проведения по фильтру, отсортированные по времени начала
func (r *Repository) List(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectSchedules()
	if filter.ActivityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.activity_id": *filter.ActivityID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.scheduled_start": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"s.scheduled_start": *filter.To})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": true})
	}

	query, args, err := selectBuilder.OrderBy("s.scheduled_start ASC", "s.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// FindOverlapping ищет активные проведения активности, пересекающиеся с [start, end)
// excludeID позволяет не учитывать само изменяемое проведение
func (r *Repository) FindOverlapping(ctx context.Context, activityID int64, start, end time.Time, excludeID *int64) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectSchedules().
		Where(squirrel.Eq{"s.activity_id": activityID}).
		Where(squirrel.Eq{"s.status": true}).
		Where(squirrel.Lt{"s.scheduled_start": end}).
		Where(squirrel.Gt{"s.scheduled_end": start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"s.id": *excludeID})
	}

	query, args, err := selectBuilder.OrderBy("s.scheduled_start ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// LockByActivity блокирует все проведения активности до конца транзакции
func (r *Repository) LockByActivity(ctx context.Context, activityID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"activity_id": activityID}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockByActivity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LockByActivity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: LockByActivity - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// AdjustBookedCount атомарно изменяет booked_count на delta
// Изменение применяется только если результат остается в [0, capacity],
// иначе возвращается ErrNotEnoughCapacity
func (r *Repository) AdjustBookedCount(ctx context.Context, id int64, delta int) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("booked_count", squirrel.Expr("booked_count + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("booked_count + ? <= capacity", delta)).
		Where(squirrel.Expr("booked_count + ? >= 0", delta)).
		Suffix("RETURNING capacity, booked_count, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AdjustBookedCount - build update query: %v", ErrBuildQuery, err)
	}

	s := &domain.Schedule{ID: id}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.Capacity, &s.BookedCount, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) || pgerrors.IsCheckViolation(err) {
		return nil, ErrNotEnoughCapacity
	}
	if err != nil {
		return nil, fmt.Errorf("%w: AdjustBookedCount - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update сохраняет изменяемые поля проведения
// Вместимость ниже текущего booked_count отклоняется ограничением БД
func (r *Repository) Update(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("scheduled_start", s.ScheduledStart).
		Set("scheduled_end", s.ScheduledEnd).
		Set("capacity", s.Capacity).
		Set("status", s.IsActive).
		Set("adult_price", s.AdultPrice).
		Set("child_price", s.ChildPrice).
		Set("senior_price", s.SeniorPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING booked_count, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.BookedCount, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrScheduleNotFound
	}
	if pgerrors.IsCheckViolation(err) {
		return ErrNotEnoughCapacity
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus включает или выключает проведение
func (r *Repository) UpdateStatus(ctx context.Context, id int64, isActive bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", isActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет проведение вместе с назначениями гидов
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule

	err := row.Scan(
		&s.ID,
		&s.ActivityID,
		&s.ActivityTitle,
		&s.ScheduledStart,
		&s.ScheduledEnd,
		&s.Capacity,
		&s.BookedCount,
		&s.IsActive,
		&s.AdultPrice,
		&s.ChildPrice,
		&s.SeniorPrice,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
