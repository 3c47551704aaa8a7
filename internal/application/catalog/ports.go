package catalog

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace Rollback y no persiste ningún cambio.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.MenuItemRepository,
	) error) error
}
