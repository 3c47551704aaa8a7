package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Category, error)
	// Delete elimina la categoría y, por ON DELETE CASCADE, sus platillos.
	Delete(ctx context.Context, id string) error
}
