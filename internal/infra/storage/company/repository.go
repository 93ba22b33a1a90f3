package company

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

const table = "companies"

var columns = []string{"id", "name", "commission_percentage", "status", "created_at", "updated_at"}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий компаний-партнеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает страницу компаний и общее количество
func (r *Repository) List(ctx context.Context, filter domain.CompaniesFilter) ([]*domain.Company, int, error) {
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

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return companies, total, nil
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCompany(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan company: %v", ErrScanRow, err)
	}

	return c, nil
}

// Create создает компанию
func (r *Repository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "commission_percentage", "status").
		Values(c.Name, c.CommissionPercentage, c.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// Update сохраняет изменяемые поля компании
func (r *Repository) Update(ctx context.Context, c *domain.Company) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", c.Name).
		Set("commission_percentage", c.CommissionPercentage).
		Set("status", c.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет компанию, у бронирований company_id обнуляется
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
		return ErrCompanyNotFound
	}

	return nil
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.CommissionPercentage, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
