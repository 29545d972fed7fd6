package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return client, nil
}

// TokenRevoker keeps one key per revoked token id and lets redis expire it
// together with the token.
type TokenRevoker struct {
	client redis.Cmdable
}

func NewTokenRevoker(client redis.Cmdable) *TokenRevoker {
	return &TokenRevoker{
		client: client,
	}
}

func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	err := r.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return count > 0, nil
}

// NopTokenRevoker is used when no redis address is configured; logging out
// then only clears the cookie.
type NopTokenRevoker struct{}

func (NopTokenRevoker) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (NopTokenRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
