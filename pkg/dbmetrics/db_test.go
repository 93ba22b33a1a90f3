package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM bookings"))
	assert.Equal(t, "update", operationOf("  UPDATE activity_schedules SET booked_count = 1"))
	assert.Equal(t, "unknown", operationOf(""))
}

type stubTx struct {
	DBExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	fallback := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, fallback, GetExecutor(ctx, fallback))

	tx := stubTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, fallback))
}
