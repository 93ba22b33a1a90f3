package setting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

const table = "settings"

var columns = []string{"id", "key", "value", "description", "updated_at"}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий системных настроек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает страницу настроек, отсортированных по ключу, и общее количество
func (r *Repository) List(ctx context.Context, filter domain.SettingsFilter) ([]*domain.Setting, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("key ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := r.query(ctx, "List", query, args)
	if err != nil {
		return nil, 0, err
	}

	return settings, total, nil
}

// GetByKey получает настройку по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSetting(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan setting: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByKeys получает настройки по списку ключей, отсутствующие ключи пропускаются
func (r *Repository) GetByKeys(ctx context.Context, keys []string) ([]*domain.Setting, error) {
	if len(keys) == 0 {
		return []*domain.Setting{}, nil
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"key": keys}).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKeys - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByKeys", query, args)
}

// UpdateValue меняет значение настройки и возвращает обновленную запись
func (r *Repository) UpdateValue(ctx context.Context, key, value string) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("value", value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": key}).
		Suffix("RETURNING id, key, value, description, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateValue - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSetting(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateValue - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return settings, nil
}

func scanSetting(row rowScanner) (*domain.Setting, error) {
	var s domain.Setting
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
