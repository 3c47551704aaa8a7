package entity

import "time"

// Category agrupa platillos de un restaurante. RestaurantID es la única fuente de verdad
// para decidir quién puede modificarla.
type Category struct {
	ID           string
	RestaurantID string
	Label        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID devuelve el restaurante dueño.
func (c *Category) OwnerID() string {
	if c == nil {
		return ""
	}
	return c.RestaurantID
}
