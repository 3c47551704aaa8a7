package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/menu-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las etiquetas `validate` de un DTO. Devuelve *domain.ValidationError con
// el mensaje indicado para campos requeridos ausentes, o uno de longitud si se excede max.
func Validate(in any, requiredMessage string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return domain.NewValidationError(strings.ToLower(fe.Field()), requiredMessage)
		}
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "max" {
		return domain.NewValidationError(field, "El campo "+field+" supera la longitud máxima ("+fe.Param()+").")
	}
	return domain.NewValidationError(field, "El campo "+field+" no es válido.")
}
