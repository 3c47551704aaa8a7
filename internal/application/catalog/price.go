package catalog

import (
	"regexp"
	"strings"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/shopspring/decimal"
)

// maxPrice límite de la columna NUMERIC(12,2).
var maxPrice = decimal.New(1, 10)

// plainPrice solo dígitos con separador decimal opcional; sin signo ni exponente.
var plainPrice = regexp.MustCompile(`^(\d+)(?:[.,](\d+))?$`)

// ParsePrice convierte el texto del formulario en un precio no negativo con hasta
// dos decimales. Acepta coma como separador decimal. No redondea: un valor inválido es
// un error de validación. El texto se valida antes de construir el decimal.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, domain.NewValidationError("price", "El precio es obligatorio.")
	}
	if strings.HasPrefix(s, "-") {
		return decimal.Zero, domain.NewValidationError("price", "El precio no puede ser negativo.")
	}
	m := plainPrice.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, domain.NewValidationError("price", "El precio debe ser un número válido.")
	}
	intPart, fracPart := strings.TrimLeft(m[1], "0"), strings.TrimRight(m[2], "0")
	if len(fracPart) > 2 {
		return decimal.Zero, domain.NewValidationError("price", "El precio admite como máximo dos decimales.")
	}
	if len(intPart) > 10 {
		return decimal.Zero, domain.NewValidationError("price", "El precio es demasiado alto.")
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart != "" {
		intPart += "." + fracPart
	}
	price, err := decimal.NewFromString(intPart)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("price", "El precio debe ser un número válido.")
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, domain.NewValidationError("price", "El precio es demasiado alto.")
	}
	return price, nil
}
