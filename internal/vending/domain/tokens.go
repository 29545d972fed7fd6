package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=tokens.go -destination=../../../gen/mocks/vending/tokens.go -package=mocks

// TokenRevoker remembers logged out token ids until the tokens expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
