package dto

import "time"

// RegisterRestaurantRequest entrada del registro (formulario multipart; la imagen viaja aparte).
type RegisterRestaurantRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=120"`
	Password    string `json:"password" form:"password" validate:"required"`
	Schedule    string `json:"schedule" form:"schedule" validate:"required,max=255"`
	Location    string `json:"location" form:"location" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
}

// LoginRequest entrada para login por nombre de restaurante.
type LoginRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RestaurantResponse salida de un restaurante (sin hash de contraseña).
type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Schedule    string    `json:"schedule"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expires_at"`
	Restaurant RestaurantResponse `json:"restaurant"`
}

// DashboardResponse perfil del restaurante con su menú completo.
type DashboardResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Categories []CategoryResponse `json:"categories"`
}
