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

// ListLanguages возвращает справочник языков
func (r *Repository) ListLanguages(ctx context.Context, onlyActive bool) ([]*domain.Language, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "code", "name", "status").From("languages")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLanguages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLanguages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	languages := make([]*domain.Language, 0)
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListLanguages - scan row: %v", ErrScanRow, err)
		}
		languages = append(languages, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLanguages - rows error: %v", ErrScanRow, err)
	}

	return languages, nil
}

// SetLanguages заменяет список языков гида
func (r *Repository) SetLanguages(ctx context.Context, guideID int64, languageIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guide_languages").
		Where(squirrel.Eq{"guide_id": guideID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetLanguages - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetLanguages - execute delete: %v", ErrExecQuery, err)
	}

	if len(languageIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("guide_languages").Columns("guide_id", "language_id")
	for _, id := range languageIDs {
		insertBuilder = insertBuilder.Values(guideID, id)
	}

	query, args, err = insertBuilder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetLanguages - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if pgerrors.IsForeignKeyViolation(err) {
		return ErrLanguageNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: SetLanguages - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) attachLanguages(ctx context.Context, guides []*domain.Guide) error {
	if len(guides) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Guide, len(guides))
	ids := make([]int64, 0, len(guides))
	for _, g := range guides {
		byID[g.ID] = g
		ids = append(ids, g.ID)
	}

	query, args, err := psqlbuilder.Select("guide_id", "language_id").
		From("guide_languages").
		Where(squirrel.Eq{"guide_id": ids}).
		OrderBy("guide_id", "language_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachLanguages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachLanguages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var guideID, languageID int64
		if err := rows.Scan(&guideID, &languageID); err != nil {
			return fmt.Errorf("%w: attachLanguages - scan row: %v", ErrScanRow, err)
		}
		if g, ok := byID[guideID]; ok {
			g.LanguageIDs = append(g.LanguageIDs, languageID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachLanguages - rows error: %v", ErrScanRow, err)
	}

	return nil
}
