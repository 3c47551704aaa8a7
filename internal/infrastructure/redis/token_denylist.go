// Package redis guarda la lista de tokens revocados en Redis, compartida entre instancias.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.TokenDenylist = (*TokenDenylist)(nil)

const keyPrefix = "menu-api:revoked:"

// TokenDenylist guarda cada jti revocado con TTL igual al tiempo restante del token.
type TokenDenylist struct {
	client *goredis.Client
	now    func() time.Time
}

// NewTokenDenylist conecta con Redis y verifica la conexión con PING.
func NewTokenDenylist(ctx context.Context, addr, password string, db int) (*TokenDenylist, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &TokenDenylist{client: client, now: time.Now}, nil
}

// Revoke marca el token hasta expiresAt. Un token ya expirado no se guarda.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti está en la lista.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// Close cierra el cliente.
func (d *TokenDenylist) Close() error {
	return d.client.Close()
}
