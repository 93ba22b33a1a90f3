package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, если не удалось открыть транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, если не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции
// Транзакция передается через контекст, репозитории берут её через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}
