package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=transactions.go -destination=../../../gen/mocks/database/transactions.go -package=mocks

const (
	DefaultLockTimeout = 2 * time.Second
	DefaultMaxAttempts = 3

	setLockTimeoutSQL = `SELECT set_config('lock_timeout', $1, true)`
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type TxManagerOption func(tm *DelegateTxManager)

func WithLockTimeout(timeout time.Duration) TxManagerOption {
	return func(tm *DelegateTxManager) {
		tm.lockTimeout = timeout
	}
}

func WithMaxAttempts(attempts int) TxManagerOption {
	return func(tm *DelegateTxManager) {
		if attempts > 0 {
			tm.maxAttempts = attempts
		}
	}
}

type DelegateTxManager struct {
	txBeginner  TxBeginner
	logger      logging.Logger
	lockTimeout time.Duration
	maxAttempts int
}

func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger, opts ...TxManagerOption) *DelegateTxManager {
	tm := &DelegateTxManager{
		txBeginner:  txBeginner,
		logger:      logger,
		lockTimeout: DefaultLockTimeout,
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

// WithinTransaction runs txFn in a READ COMMITTED transaction. The whole
// transaction is replayed when postgres reports a serialization failure,
// a deadlock or a lock timeout; after maxAttempts such failures a
// *TransactionConflictError is returned.
func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	var lastErr error

	for attempt := 1; attempt <= tm.maxAttempts; attempt++ {
		err := tm.runOnce(ctx, txFn)
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}

		lastErr = err
		tm.logger.Warn("transaction conflict, retrying", "attempt", attempt, "error", err.Error())

		if ctx.Err() != nil {
			break
		}
	}

	return &TransactionConflictError{
		Msg: fmt.Sprintf("transaction aborted after conflicting writes: %v", lastErr),
	}
}

func (tm *DelegateTxManager) runOnce(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	if tm.lockTimeout > 0 {
		_, err = tx.Exec(ctx, setLockTimeoutSQL, formatTimeout(tm.lockTimeout))
		if err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	err = txFn(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to execute logic within transaction: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func formatTimeout(timeout time.Duration) string {
	return fmt.Sprintf("%dms", timeout.Milliseconds())
}
