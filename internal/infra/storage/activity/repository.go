package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/pgerrors"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

const table = "activities"

var columns = []string{
	"a.id",
	"a.activity_type_id",
	"t.name",
	"a.title",
	"a.party_size",
	"a.adult_price",
	"a.child_price",
	"a.senior_price",
	"a.status",
	"(SELECT COUNT(*) FROM activity_schedules s WHERE s.activity_id = a.id)",
	"a.created_at",
	"a.updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий каталога активностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectActivities() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table + " a").
		Join("activity_types t ON t.id = a.activity_type_id")
}

// List получает страницу активностей и общее количество
func (r *Repository) List(ctx context.Context, filter domain.ActivitiesFilter) ([]*domain.Activity, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countBuilder := psqlbuilder.Select("COUNT(*)").From(table + " a")
	selectBuilder := selectActivities()
	if filter.Status != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	query, args, err := selectBuilder.
		OrderBy("a.title ASC", "a.id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return activities, total, nil
}

// GetByID получает активность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает активность и блокирует ее строку до конца транзакции
// Используется для сериализации создания проведений одной активности
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectActivities().Where(squirrel.Eq{"a.id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanActivity(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan activity: %v", ErrScanRow, err)
	}

	return a, nil
}

// Create создает активность
func (r *Repository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"activity_type_id",
			"title",
			"party_size",
			"adult_price",
			"child_price",
			"senior_price",
			"status",
		).
		Values(
			a.ActivityTypeID,
			a.Title,
			a.PartySize,
			a.AdultPrice,
			a.ChildPrice,
			a.SeniorPrice,
			a.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrActivityTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Update сохраняет изменяемые поля активности
func (r *Repository) Update(ctx context.Context, a *domain.Activity) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("activity_type_id", a.ActivityTypeID).
		Set("title", a.Title).
		Set("party_size", a.PartySize).
		Set("adult_price", a.AdultPrice).
		Set("child_price", a.ChildPrice).
		Set("senior_price", a.SeniorPrice).
		Set("status", a.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrActivityNotFound
	}
	if pgerrors.IsForeignKeyViolation(err) {
		return ErrActivityTypeNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет активность, проведения удаляются каскадно
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
		return ErrActivityNotFound
	}

	return nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity

	err := row.Scan(
		&a.ID,
		&a.ActivityTypeID,
		&a.ActivityTypeName,
		&a.Title,
		&a.PartySize,
		&a.AdultPrice,
		&a.ChildPrice,
		&a.SeniorPrice,
		&a.IsActive,
		&a.SchedulesCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}
