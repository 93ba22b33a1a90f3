package guide

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/pgerrors"
	"github.com/m04kA/TourOps-BookingService/pkg/psqlbuilder"
)

const assignmentsTable = "schedule_guides"

// ListAssignments возвращает гидов, назначенных на проведение (лидер первым)
func (r *Repository) ListAssignments(ctx context.Context, scheduleID int64) ([]domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sg.activity_schedule_id",
		"sg.guide_id",
		"g.name",
		"sg.is_leader",
		"sg.assigned_at",
	).
		From(assignmentsTable+" sg").
		Join("guides g ON g.id = sg.guide_id").
		Where(squirrel.Eq{"sg.activity_schedule_id": scheduleID}).
		OrderBy("sg.is_leader DESC", "g.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.Assignment, 0)
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ScheduleID, &a.GuideID, &a.GuideName, &a.IsLeader, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("%w: ListAssignments - scan row: %v", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

// ReplaceAssignments заменяет все назначения проведения
// Должен вызываться в транзакции, чтобы замена была атомарной
func (r *Repository) ReplaceAssignments(ctx context.Context, scheduleID int64, assignments []domain.Assignment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(assignmentsTable).
		Where(squirrel.Eq{"activity_schedule_id": scheduleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - execute delete: %v", ErrExecQuery, err)
	}

	if len(assignments) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(assignmentsTable).
		Columns("activity_schedule_id", "guide_id", "is_leader")
	for _, a := range assignments {
		insertBuilder = insertBuilder.Values(scheduleID, a.GuideID, a.IsLeader)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAssignments - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	switch {
	case pgerrors.IsUniqueViolation(err):
		// uq_schedule_guides_leader или первичный ключ (schedule, guide)
		if domain.LeadersCount(assignments) > 1 {
			return ErrLeaderConflict
		}
		return ErrDuplicateAssignment
	case pgerrors.IsForeignKeyViolation(err):
		return ErrGuideNotFound
	case err != nil:
		return fmt.Errorf("%w: ReplaceAssignments - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
