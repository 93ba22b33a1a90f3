package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

// CommissionsByPeriod агрегирует неотмененные бронирования компаний по проведениям,
// начинающимся в [from, to). Сортировка по названию компании
func (r *Repository) CommissionsByPeriod(ctx context.Context, from, to time.Time) ([]domain.CommissionSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"b.company_id",
		"c.name",
		"COUNT(*)",
		"COALESCE(SUM(b.number_of_people), 0)",
		"COALESCE(SUM(b.total_price), 0)",
		"COALESCE(SUM(ROUND((b.total_price * COALESCE(b.commission_percentage, 0) / 100)::numeric, 2)), 0)",
	).
		From(table+" b").
		Join("companies c ON c.id = b.company_id").
		Join("activity_schedules s ON s.id = b.activity_schedule_id").
		Where(squirrel.Eq{"b.status": statuses}).
		Where(squirrel.GtOrEq{"s.scheduled_start": from}).
		Where(squirrel.Lt{"s.scheduled_start": to}).
		GroupBy("b.company_id", "c.name").
		OrderBy("c.name ASC", "b.company_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CommissionsByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CommissionsByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CommissionSummary, 0)
	for rows.Next() {
		var s domain.CommissionSummary
		if err := rows.Scan(&s.CompanyID, &s.CompanyName, &s.BookingsCount, &s.PeopleCount, &s.Revenue, &s.Commission); err != nil {
			return nil, fmt.Errorf("%w: CommissionsByPeriod - scan row: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CommissionsByPeriod - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
