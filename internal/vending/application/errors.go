package application

import (
	"errors"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

// translateTxError turns exhausted transaction retries into
// *domain.TransactionConflictError and passes other errors through.
func translateTxError(err error) error {
	if err == nil {
		return nil
	}

	var conflictErr *database.TransactionConflictError
	if errors.As(err, &conflictErr) {
		return &domain.TransactionConflictError{Msg: "the operation conflicted with a concurrent update, please retry"}
	}

	return err
}

func notABuyer() error {
	return &domain.AuthorizationError{Msg: "not a buyer"}
}

func notASeller() error {
	return &domain.AuthorizationError{Msg: "not a seller"}
}

func notSelf() error {
	return &domain.AuthorizationError{Msg: "operation allowed on own account only"}
}
