package guide

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

// ListLoad возвращает активных гидов с числом назначений на активные проведения,
// пересекающиеся с [start, end). Сортировка по имени
func (r *Repository) ListLoad(ctx context.Context, start, end time.Time) ([]domain.GuideLoad, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"g.id",
		"g.name",
		"g.max_party_size",
		"COUNT(s.id)",
		"COUNT(s.id) FILTER (WHERE sg.is_leader)",
	).
		From(table+" g").
		LeftJoin(assignmentsTable+" sg ON sg.guide_id = g.id").
		LeftJoin("activity_schedules s ON s.id = sg.activity_schedule_id AND s.status "+
			"AND s.scheduled_start < ? AND s.scheduled_end > ?", end, start).
		Where(squirrel.Eq{"g.status": true}).
		GroupBy("g.id", "g.name", "g.max_party_size").
		OrderBy("g.name ASC", "g.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoad - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoad - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.GuideLoad, 0)
	for rows.Next() {
		var l domain.GuideLoad
		var maxPartySize sql.NullInt64
		if err := rows.Scan(&l.Guide.ID, &l.Guide.Name, &maxPartySize, &l.Assignments, &l.Leading); err != nil {
			return nil, fmt.Errorf("%w: ListLoad - scan row: %v", ErrScanRow, err)
		}
		if maxPartySize.Valid {
			size := int(maxPartySize.Int64)
			l.Guide.MaxPartySize = &size
		}
		l.Guide.IsActive = true
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLoad - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
