package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	v view
}

// NewCategoryRepository construye el repositorio sobre el almacén compartido.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{v: s.sharedView()}
}

// Create persiste una categoría; el restaurante debe existir (FK).
func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.restaurants[category.RestaurantID]; !ok {
			return fmt.Errorf("insert category: restaurante %s inexistente", category.RestaurantID)
		}
		if _, ok := st.categories[category.ID]; ok {
			return domain.ErrDuplicate
		}
		st.categories[category.ID] = *category
		return nil
	})
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	var out *entity.Category
	r.v.read(func(st *state) {
		if c, ok := st.categories[id]; ok {
			out = &c
		}
	})
	return out, nil
}

// GetByIDForUpdate igual que GetByID; el aislamiento lo da TxRunner.
func (r *CategoryRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Category, error) {
	return r.GetByID(ctx, id)
}

// Update actualiza el nombre de la categoría.
func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	return r.v.write(func(st *state) error {
		current, ok := st.categories[category.ID]
		if !ok {
			return nil
		}
		current.Label = category.Label
		current.UpdatedAt = category.UpdatedAt
		st.categories[category.ID] = current
		return nil
	})
}

// ListByRestaurant lista las categorías del restaurante por fecha de creación.
func (r *CategoryRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Category, error) {
	var list []*entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			if c.RestaurantID == restaurantID {
				c := c
				list = append(list, &c)
			}
		}
	})
	sortCategories(list)
	return list, nil
}

// Delete elimina la categoría y sus platillos (ON DELETE CASCADE).
func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	return r.v.write(func(st *state) error {
		delete(st.categories, id)
		for itemID, it := range st.items {
			if it.CategoryID == id {
				delete(st.items, itemID)
			}
		}
		return nil
	})
}
