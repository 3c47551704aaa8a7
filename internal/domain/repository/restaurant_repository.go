package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
// Los Get* devuelven (nil, nil) si no existe el registro.
type RestaurantRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya está registrado.
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	GetByName(ctx context.Context, name string) (*entity.Restaurant, error)
}
