// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Reproduce las reglas del esquema SQL: nombre de restaurante único, claves foráneas y
// borrado en cascada.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

type state struct {
	restaurants map[string]entity.Restaurant
	categories  map[string]entity.Category
	items       map[string]entity.MenuItem // RestaurantID no se guarda: se resuelve al leer
}

func newState() *state {
	return &state{
		restaurants: map[string]entity.Restaurant{},
		categories:  map[string]entity.Category{},
		items:       map[string]entity.MenuItem{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.restaurants {
		c.restaurants[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}

// Store contenedor compartido por los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // serializa transacciones (equivalente a los bloqueos de fila)
	data *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

// Counts devuelve el número de restaurantes, categorías y platillos.
func (s *Store) Counts() (restaurants, categories, items int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.restaurants), len(s.data.categories), len(s.data.items)
}

// view acceso a un estado concreto: el compartido o la copia de una transacción.
type view struct {
	mu   *sync.RWMutex
	txMu *sync.Mutex // nil dentro de una transacción
	data func() *state
}

func (s *Store) sharedView() view {
	return view{mu: &s.mu, txMu: &s.txMu, data: func() *state { return s.data }}
}

func (v view) read(fn func(st *state)) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fn(v.data())
}

func (v view) write(fn func(st *state) error) error {
	if v.txMu != nil {
		v.txMu.Lock()
		defer v.txMu.Unlock()
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return fn(v.data())
}

func withOwner(st *state, it entity.MenuItem) *entity.MenuItem {
	if c, ok := st.categories[it.CategoryID]; ok {
		it.RestaurantID = c.RestaurantID
	}
	return &it
}

func sortCategories(list []*entity.Category) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

func sortItems(list []*entity.MenuItem) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
