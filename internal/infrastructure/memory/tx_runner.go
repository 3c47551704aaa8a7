package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback sobre una copia del estado y la publica solo si no hay error.
// Las transacciones se serializan entre sí y con las escrituras fuera de transacción.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{store: s}
}

// RunCatalog ejecuta fn con repositorios ligados a la transacción.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(categoryRepo repository.CategoryRepository, itemRepo repository.MenuItemRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	var txMu sync.RWMutex
	v := view{mu: &txMu, data: func() *state { return working }}
	if err := fn(&CategoryRepo{v: v}, &MenuItemRepo{v: v}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()
	return nil
}
