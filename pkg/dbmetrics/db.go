package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/TourOps-BookingService/pkg/metrics"
)

// DefaultStatsInterval период снятия статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, снимающая метрики запросов
// При metrics == nil работает как прозрачный прокси
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go wrapped.collectPoolStats(DefaultStatsInterval, stopCh)
	}
	return wrapped
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	op := operationOf(query)
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		d.metrics.DBQueryErrors.WithLabelValues(op).Inc()
	}
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBOpenConnections.Set(float64(stats.OpenConnections))
			d.metrics.DBInUse.Set(float64(stats.InUse))
			d.metrics.DBIdle.Set(float64(stats.Idle))
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// operationOf возвращает первое ключевое слово запроса в нижнем регистре
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
