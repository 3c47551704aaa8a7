package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
// Las lecturas rellenan MenuItem.RestaurantID con un JOIN a la categoría padre.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
