package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs       []*fakeTx
	opts      []*sql.TxOptions
	commitErr []error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	if len(b.commitErr) > len(b.txs) {
		tx.commitErr = b.commitErr[len(b.txs)]
	}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, beginner.txs, 1)
	assert.True(t, beginner.txs[0].committed)
	assert.False(t, beginner.txs[0].rolledBack)
}

func TestDo_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, beginner.txs[0].rolledBack)
	assert.False(t, beginner.txs[0].committed)
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoReadOnly(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, beginner.txs, 1)
}

func TestDo_CommitErrorIsWrapped(t *testing.T) {
	commitErr := errors.New("connection reset")
	beginner := &fakeBeginner{commitErr: []error{commitErr}}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.ErrorIs(t, err, commitErr)
	assert.Equal(t, sql.LevelReadCommitted, beginner.opts[0].Isolation)
}

func TestDoReadOnly_SetsReadOnly(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	require.NoError(t, m.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil }))
	assert.True(t, beginner.opts[0].ReadOnly)
}
