package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладет транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext достает транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor возвращает транзакцию из контекста, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}
