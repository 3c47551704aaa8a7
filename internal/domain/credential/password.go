// Package credential concentra el hashing de contraseñas y la política de complejidad.
package credential

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/jhoicas/menu-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima exigida por la política.
const MinPasswordLength = 8

// PolicyMessage mensaje mostrado cuando la contraseña no cumple la política.
const PolicyMessage = "La contraseña debe tener al menos 8 caracteres, incluyendo una mayúscula, una minúscula y un número."

// dummyHash se compara cuando la cuenta no existe, para que el tiempo de respuesta
// del login no revele si el nombre está registrado.
var (
	dummyOnce sync.Once
	dummyHash []byte
)

// PolicyResult desglosa las cuatro condiciones de la política de contraseñas.
type PolicyResult struct {
	LongEnough bool
	HasUpper   bool
	HasLower   bool
	HasDigit   bool
}

// OK indica si se cumplen todas las condiciones.
func (r PolicyResult) OK() bool {
	return r.LongEnough && r.HasUpper && r.HasLower && r.HasDigit
}

// EvaluatePolicy evalúa cada condición por separado. Mayúsculas, minúsculas y dígitos
// se cuentan sobre el rango ASCII.
func EvaluatePolicy(plain string) PolicyResult {
	res := PolicyResult{LongEnough: utf8.RuneCountInString(plain) >= MinPasswordLength}
	for _, r := range plain {
		switch {
		case r >= 'A' && r <= 'Z':
			res.HasUpper = true
		case r >= 'a' && r <= 'z':
			res.HasLower = true
		case r >= '0' && r <= '9':
			res.HasDigit = true
		}
	}
	return res
}

// MeetsPolicy predicado booleano de la política.
func MeetsPolicy(plain string) bool {
	return EvaluatePolicy(plain).OK()
}

// CheckPolicy devuelve un *domain.ValidationError si la contraseña es débil.
func CheckPolicy(plain string) error {
	if !MeetsPolicy(plain) {
		return domain.NewValidationError("password", PolicyMessage)
	}
	return nil
}

// Hash genera un hash bcrypt (con sal) de la contraseña. Nunca registra el texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError("password", "La contraseña no puede superar 72 bytes.")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compara en tiempo constante. Un hash vacío nunca coincide.
func Verify(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyDummy consume el mismo tiempo que Verify para cuentas inexistentes. Siempre false.
func VerifyDummy(plain string) bool {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return false
}
