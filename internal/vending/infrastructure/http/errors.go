package http

import (
	"errors"
	"net/http"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// writeError maps a domain error to a status code. Anything unknown is
// logged and answered with a generic message.
func writeError(c *gin.Context, logger logging.Logger, operation string, err error) {
	status, known := statusFor(err)
	if !known {
		logger.Error("request failed",
			"request_id", c.GetString(requestIDKey),
			"operation", operation,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": internalErrorMessage})
		return
	}

	c.JSON(status, gin.H{"errors": err.Error()})
}

func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, &domain.UserNotFoundError{}), errors.Is(err, &domain.ProductNotFoundError{}):
		return http.StatusNotFound, true
	case errors.Is(err, &domain.AuthorizationError{}):
		return http.StatusForbidden, true
	case errors.Is(err, &domain.CredentialsMismatchError{}):
		return http.StatusUnauthorized, true
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.ConflictError{}),
		errors.Is(err, &domain.InsufficientFundsError{}),
		errors.Is(err, &domain.OutOfStockError{}),
		errors.Is(err, &domain.InsufficientStockError{}):
		return http.StatusBadRequest, true
	case errors.Is(err, &domain.TransactionConflictError{}):
		return http.StatusConflict, true
	default:
		return 0, false
	}
}
