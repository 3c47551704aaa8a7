package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("no tienes permiso para modificar este recurso")
	ErrInvalidCredentials = errors.New("nombre o contraseña incorrectos")
	ErrUpload             = errors.New("error subiendo imagen")

	ErrRestaurantNotFound = fmt.Errorf("restaurante no encontrado: %w", ErrNotFound)
	ErrCategoryNotFound   = fmt.Errorf("categoría no encontrada: %w", ErrNotFound)
	ErrMenuItemNotFound   = fmt.Errorf("platillo no encontrado: %w", ErrNotFound)

	// ErrNameTaken conflicto de nombre en el registro de un restaurante.
	ErrNameTaken = fmt.Errorf("nombre de restaurante ya registrado: %w", ErrDuplicate)
)

// ValidationError error de validación con un mensaje apto para el usuario final.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
