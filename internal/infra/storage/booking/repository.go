package booking

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

const table = "bookings"

var columns = []string{
	"id",
	"activity_schedule_id",
	"company_id",
	"transport",
	"passenger_count",
	"number_of_people",
	"adult_count",
	"child_count",
	"senior_count",
	"commission_percentage",
	"customer_name",
	"customer_email",
	"customer_phone",
	"status",
	"adult_price",
	"child_price",
	"senior_price",
	"total_price",
	"created_by",
	"cancelled_at",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Места на проведении должны быть заняты в той же транзакции до вызова
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"activity_schedule_id",
			"company_id",
			"transport",
			"passenger_count",
			"number_of_people",
			"adult_count",
			"child_count",
			"senior_count",
			"commission_percentage",
			"customer_name",
			"customer_email",
			"customer_phone",
			"status",
			"adult_price",
			"child_price",
			"senior_price",
			"total_price",
			"created_by",
		).
		Values(
			booking.ActivityScheduleID,
			booking.CompanyID,
			booking.Transport,
			booking.PassengerCount,
			booking.NumberOfPeople,
			booking.AdultCount,
			booking.ChildCount,
			booking.SeniorCount,
			booking.CommissionPercentage,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Status,
			booking.AdultPrice,
			booking.ChildPrice,
			booking.SeniorPrice,
			booking.TotalPrice,
			booking.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронирование по ID и блокирует строку до конца транзакции
// Вне транзакции работает как GetByID
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает страницу бронирований и общее количество по фильтру
// Сортировка: сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	query, args, err := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("created_at DESC", "id DESC").
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

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ActivityScheduleID != nil {
		b = b.Where(squirrel.Eq{"activity_schedule_id": *filter.ActivityScheduleID})
	}
	if filter.CompanyID != nil {
		b = b.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	return b
}

// Update сохраняет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("activity_schedule_id", booking.ActivityScheduleID).
		Set("company_id", booking.CompanyID).
		Set("transport", booking.Transport).
		Set("passenger_count", booking.PassengerCount).
		Set("number_of_people", booking.NumberOfPeople).
		Set("adult_count", booking.AdultCount).
		Set("child_count", booking.ChildCount).
		Set("senior_count", booking.SeniorCount).
		Set("commission_percentage", booking.CommissionPercentage).
		Set("customer_name", booking.CustomerName).
		Set("customer_email", booking.CustomerEmail).
		Set("customer_phone", booking.CustomerPhone).
		Set("status", booking.Status).
		Set("adult_price", booking.AdultPrice).
		Set("child_price", booking.ChildPrice).
		Set("senior_price", booking.SeniorPrice).
		Set("total_price", booking.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Cancel переводит бронирование в статус cancelled
// Повторная отмена возвращает ErrCannotCancel
func (r *Repository) Cancel(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Suffix("RETURNING cancelled_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	var cancelledAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cancelledAt, &booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCannotCancel
	}
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	booking.Status = domain.StatusCancelled
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}

	return nil
}

// HasActiveBySchedule проверяет, есть ли на проведении неотмененные бронирования
func (r *Repository) HasActiveBySchedule(ctx context.Context, scheduleID int64) (bool, error) {
	return r.hasActive(ctx, "HasActiveBySchedule", squirrel.Eq{"activity_schedule_id": scheduleID})
}

// HasActiveByActivity проверяет, есть ли неотмененные бронирования на любом проведении активности
func (r *Repository) HasActiveByActivity(ctx context.Context, activityID int64) (bool, error) {
	return r.hasActive(ctx, "HasActiveByActivity", squirrel.Expr(
		"activity_schedule_id IN (SELECT id FROM activity_schedules WHERE activity_id = ?)", activityID,
	))
}

func (r *Repository) hasActive(ctx context.Context, op string, cond squirrel.Sqlizer) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		statuses[i] = string(s)
	}

	subQuery, args, err := psqlbuilder.Select("1").
		From(table).
		Where(cond).
		Where(squirrel.Eq{"status": statuses}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var exists bool
	err = executor.QueryRowContext(ctx, "SELECT EXISTS ("+subQuery+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	return exists, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var passengerCount sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ActivityScheduleID,
		&booking.CompanyID,
		&booking.Transport,
		&passengerCount,
		&booking.NumberOfPeople,
		&booking.AdultCount,
		&booking.ChildCount,
		&booking.SeniorCount,
		&booking.CommissionPercentage,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Status,
		&booking.AdultPrice,
		&booking.ChildPrice,
		&booking.SeniorPrice,
		&booking.TotalPrice,
		&booking.CreatedBy,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if passengerCount.Valid {
		pc := int(passengerCount.Int64)
		booking.PassengerCount = &pc
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
