package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	numericOutOfRangeCode   = "22003"
	serializationFailure    = "40001"
	deadlockDetected        = "40P01"
	lockNotAvailable        = "55P03"
)

//region TransactionConflictError

type TransactionConflictError struct {
	Msg string
}

func (e *TransactionConflictError) Error() string {
	return e.Msg
}

func (e *TransactionConflictError) Is(target error) bool {
	_, ok := target.(*TransactionConflictError)
	return ok
}

//endregion

func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolationCode)
}

func IsNumericOutOfRange(err error) bool {
	return hasCode(err, numericOutOfRangeCode)
}

// IsRetryable reports whether the transaction that produced err may succeed
// when run again from the start.
func IsRetryable(err error) bool {
	return hasCode(err, serializationFailure, deadlockDetected, lockNotAvailable)
}

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	for _, code := range codes {
		if pgErr.Code == code {
			return true
		}
	}

	return false
}
