package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación en memoria de MenuItemRepository.
type MenuItemRepo struct {
	v view
}

// NewMenuItemRepository construye el repositorio sobre el almacén compartido.
func NewMenuItemRepository(s *Store) *MenuItemRepo {
	return &MenuItemRepo{v: s.sharedView()}
}

// Create persiste un platillo; la categoría debe existir (FK). RestaurantID se ignora.
func (r *MenuItemRepo) Create(_ context.Context, item *entity.MenuItem) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.categories[item.CategoryID]; !ok {
			return fmt.Errorf("insert menu item: categoría %s inexistente", item.CategoryID)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("insert menu item: precio negativo")
		}
		if _, ok := st.items[item.ID]; ok {
			return domain.ErrDuplicate
		}
		stored := *item
		stored.RestaurantID = ""
		st.items[item.ID] = stored
		return nil
	})
}

// GetByID obtiene un platillo con el dueño de su categoría.
func (r *MenuItemRepo) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	var out *entity.MenuItem
	r.v.read(func(st *state) {
		if it, ok := st.items[id]; ok {
			out = withOwner(st, it)
		}
	})
	return out, nil
}

// GetByIDForUpdate igual que GetByID; el aislamiento lo da TxRunner.
func (r *MenuItemRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.MenuItem, error) {
	return r.GetByID(ctx, id)
}

// Update actualiza los campos editables. La categoría no cambia.
func (r *MenuItemRepo) Update(_ context.Context, item *entity.MenuItem) error {
	return r.v.write(func(st *state) error {
		current, ok := st.items[item.ID]
		if !ok {
			return nil
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("update menu item: precio negativo")
		}
		current.Name = item.Name
		current.Price = item.Price
		current.Description = item.Description
		current.Image = item.Image
		current.UpdatedAt = item.UpdatedAt
		st.items[item.ID] = current
		return nil
	})
}

// ListByRestaurant lista los platillos de todas las categorías del restaurante.
func (r *MenuItemRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.MenuItem, error) {
	var list []*entity.MenuItem
	r.v.read(func(st *state) {
		for _, it := range st.items {
			if c, ok := st.categories[it.CategoryID]; ok && c.RestaurantID == restaurantID {
				list = append(list, withOwner(st, it))
			}
		}
	})
	sortItems(list)
	return list, nil
}

// Delete elimina un platillo.
func (r *MenuItemRepo) Delete(_ context.Context, id string) error {
	return r.v.write(func(st *state) error {
		delete(st.items, id)
		return nil
	})
}
