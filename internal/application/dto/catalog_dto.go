package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Category string `json:"category" form:"category" validate:"required,max=120"`
}

// CategoryResponse salida de una categoría; Items solo se rellena en el dashboard.
type CategoryResponse struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurant_id"`
	Category     string             `json:"category"`
	Items        []MenuItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CreateMenuItemRequest entrada para crear un platillo. Price llega como texto del
// formulario y se valida en el caso de uso.
type CreateMenuItemRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=120"`
	Price       string `json:"price" form:"price" validate:"required"`
	Description string `json:"description" form:"description"`
}

// UpdateMenuItemRequest actualización parcial: nil = no modificar.
type UpdateMenuItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
}

// MenuItemResponse salida de un platillo.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
