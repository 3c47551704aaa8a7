package memory

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación en memoria de RestaurantRepository.
type RestaurantRepo struct {
	v view
}

// NewRestaurantRepository construye el repositorio sobre el almacén compartido.
func NewRestaurantRepository(s *Store) *RestaurantRepo {
	return &RestaurantRepo{v: s.sharedView()}
}

// Create persiste un restaurante. ErrDuplicate si el nombre ya existe.
func (r *RestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.restaurants[restaurant.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, existing := range st.restaurants {
			if existing.Name == restaurant.Name {
				return domain.ErrDuplicate
			}
		}
		st.restaurants[restaurant.ID] = *restaurant
		return nil
	})
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	var out *entity.Restaurant
	r.v.read(func(st *state) {
		if rest, ok := st.restaurants[id]; ok {
			out = &rest
		}
	})
	return out, nil
}

// GetByName obtiene un restaurante por nombre exacto.
func (r *RestaurantRepo) GetByName(_ context.Context, name string) (*entity.Restaurant, error) {
	var out *entity.Restaurant
	r.v.read(func(st *state) {
		for _, rest := range st.restaurants {
			if rest.Name == name {
				rest := rest
				out = &rest
				return
			}
		}
	})
	return out, nil
}
