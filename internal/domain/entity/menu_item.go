package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un platillo dentro de una categoría.
// RestaurantID no se persiste en menu_items: se obtiene con un JOIN a categories al
// cargar el platillo y solo se usa para la verificación de propiedad.
type MenuItem struct {
	ID           string
	CategoryID   string
	RestaurantID string // dueño transitivo (categories.restaurant_id)
	Name         string
	Price        decimal.Decimal // >= 0, máximo 2 decimales
	Description  string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID devuelve el restaurante dueño de la categoría padre.
func (i *MenuItem) OwnerID() string {
	if i == nil {
		return ""
	}
	return i.RestaurantID
}
