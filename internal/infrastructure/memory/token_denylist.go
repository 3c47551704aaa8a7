package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.TokenDenylist = (*TokenDenylist)(nil)

// TokenDenylist lista de tokens revocados en memoria. Se usa cuando no hay Redis configurado;
// no se comparte entre instancias.
type TokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenDenylist crea la lista vacía.
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{revoked: map[string]time.Time{}, now: time.Now}
}

// Revoke marca el token como revocado hasta expiresAt.
func (d *TokenDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if !expiresAt.After(now) {
		return nil
	}
	for id, exp := range d.revoked {
		if !exp.After(now) {
			delete(d.revoked, id)
		}
	}
	d.revoked[tokenID] = expiresAt
	return nil
}

// IsRevoked indica si el token sigue revocado.
func (d *TokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(d.now()) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
