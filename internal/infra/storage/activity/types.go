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

const typesTable = "activity_types"

// ListTypes возвращает все типы активностей по имени
func (r *Repository) ListTypes(ctx context.Context) ([]*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "name", "description").
		From(typesTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.ActivityType, 0)
	for rows.Next() {
		var t domain.ActivityType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("%w: ListTypes - scan row: %v", ErrScanRow, err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTypes - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// GetTypeByID получает тип активности по ID
func (r *Repository) GetTypeByID(ctx context.Context, id int64) (*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "name", "description").
		From(typesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.ActivityType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Code, &t.Name, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - scan type: %v", ErrScanRow, err)
	}

	return &t, nil
}

// CreateType создает тип активности, код должен быть уникальным
func (r *Repository) CreateType(ctx context.Context, t *domain.ActivityType) (*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(typesTable).
		Columns("code", "name", "description").
		Values(t.Code, t.Name, t.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateType - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateTypeCode
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateType - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// UpdateType обновляет тип активности
func (r *Repository) UpdateType(ctx context.Context, t *domain.ActivityType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(typesTable).
		Set("code", t.Code).
		Set("name", t.Name).
		Set("description", t.Description).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateType - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err) {
		return ErrDuplicateTypeCode
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateType - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateType - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrActivityTypeNotFound
	}

	return nil
}
