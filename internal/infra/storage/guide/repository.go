package guide

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

const table = "guides"

var columns = []string{"id", "name", "email", "phone", "max_party_size", "status", "created_at", "updated_at"}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий гидов, языков и назначений на проведения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает страницу гидов с их языками и общее количество
func (r *Repository) List(ctx context.Context, filter domain.GuidesFilter) ([]*domain.Guide, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countBuilder := psqlbuilder.Select("COUNT(*)").From(table)
	selectBuilder := psqlbuilder.Select(columns...).From(table)
	if filter.Status != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *filter.Status})
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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
		OrderBy("name ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	guides, err := r.queryGuides(ctx, "List", query, args)
	if err != nil {
		return nil, 0, err
	}

	return guides, total, nil
}

// GetByID получает гида по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guide, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	g, err := scanGuide(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guide: %v", ErrScanRow, err)
	}

	if err := r.attachLanguages(ctx, []*domain.Guide{g}); err != nil {
		return nil, err
	}

	return g, nil
}

// GetByIDs получает гидов по списку ID, отсутствующие ID пропускаются
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Guide, error) {
	if len(ids) == 0 {
		return []*domain.Guide{}, nil
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryGuides(ctx, "GetByIDs", query, args)
}

// ListAvailable возвращает активных гидов, не занятых на пересекающихся с [start, end) проведениях
// Порядок: по убыванию max_party_size, гиды без ограничения в конце
func (r *Repository) ListAvailable(ctx context.Context, start, end time.Time, excludeScheduleID int64) ([]*domain.Guide, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table+" g").
		Where(squirrel.Eq{"g.status": true}).
		Where(squirrel.Expr(`NOT EXISTS (
			SELECT 1 FROM schedule_guides sg
			JOIN activity_schedules s ON s.id = sg.activity_schedule_id
			WHERE sg.guide_id = g.id
			  AND s.id <> ?
			  AND s.status
			  AND s.scheduled_start < ?
			  AND s.scheduled_end > ?)`, excludeScheduleID, end, start)).
		OrderBy("g.max_party_size DESC NULLS LAST", "g.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryGuides(ctx, "ListAvailable", query, args)
}

// Create создает гида, языки сохраняются через SetLanguages
func (r *Repository) Create(ctx context.Context, g *domain.Guide) (*domain.Guide, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "phone", "max_party_size", "status").
		Values(g.Name, g.Email, g.Phone, g.MaxPartySize, g.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return g, nil
}

// Update сохраняет изменяемые поля гида
func (r *Repository) Update(ctx context.Context, g *domain.Guide) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", g.Name).
		Set("email", g.Email).
		Set("phone", g.Phone).
		Set("max_party_size", g.MaxPartySize).
		Set("status", g.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": g.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGuideNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет гида вместе с его назначениями
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
		return ErrGuideNotFound
	}

	return nil
}

func (r *Repository) queryGuides(ctx context.Context, op, query string, args []interface{}) ([]*domain.Guide, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	guides := make([]*domain.Guide, 0)
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		guides = append(guides, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	rows.Close()

	if err := r.attachLanguages(ctx, guides); err != nil {
		return nil, err
	}

	return guides, nil
}

func scanGuide(row rowScanner) (*domain.Guide, error) {
	var g domain.Guide
	var maxPartySize sql.NullInt64

	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &maxPartySize, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if maxPartySize.Valid {
		size := int(maxPartySize.Int64)
		g.MaxPartySize = &size
	}
	g.LanguageIDs = []int64{}

	return &g, nil
}
