// Package authz decide si un restaurante autenticado puede modificar una entidad del catálogo.
package authz

import (
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// Decision resultado de la verificación de propiedad.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}
	return "DENY"
}

// Owned lo implementan las entidades cuyo dueño es un restaurante.
// *entity.Category devuelve restaurant_id; *entity.MenuItem el restaurant_id de su categoría.
type Owned interface {
	OwnerID() string
}

var (
	_ Owned = (*entity.Category)(nil)
	_ Owned = (*entity.MenuItem)(nil)
)

// Authorize compara el dueño de la entidad con el principal. No consulta ni escribe estado;
// la existencia de la entidad la valida quien llama. Principal o dueño vacíos: Deny.
func Authorize(principalID string, e Owned) Decision {
	if principalID == "" || e == nil {
		return Deny
	}
	owner := e.OwnerID()
	if owner == "" || owner != principalID {
		return Deny
	}
	return Allow
}

// Require es Authorize expresado como error: nil o domain.ErrForbidden.
func Require(principalID string, e Owned) error {
	if Authorize(principalID, e) != Allow {
		return domain.ErrForbidden
	}
	return nil
}
