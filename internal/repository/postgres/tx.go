package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cenkalti/backoff/v5"

	"startconnect/internal/repository"
)

// TxManager implements repository.Transactor on top of database/sql.
// Transactions run at SERIALIZABLE isolation; serialization failures and deadlocks
// are retried with exponential back-off.
type TxManager struct {
	db         *sql.DB
	newBackOff func() backoff.BackOff
	maxTries   uint
}

// TxOption customizes a TxManager.
type TxOption func(*TxManager)

// WithBackOff overrides the retry schedule.
func WithBackOff(f func() backoff.BackOff) TxOption {
	return func(m *TxManager) { m.newBackOff = f }
}

// WithMaxTries bounds the number of attempts, including the first.
func WithMaxTries(n uint) TxOption {
	return func(m *TxManager) { m.maxTries = n }
}

// NewTxManager creates a TxManager with five attempts and a default exponential schedule.
func NewTxManager(db *sql.DB, opts ...TxOption) *TxManager {
	m := &TxManager{
		db: db,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		maxTries: 5,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ repository.Transactor = (*TxManager)(nil)

// WithinTx runs fn in a transaction. A ctx that already carries a transaction joins it.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	op := func() (struct{}, error) {
		err := m.runOnce(ctx, fn)
		if err != nil && !isRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(m.newBackOff()),
		backoff.WithMaxTries(m.maxTries),
	)
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
