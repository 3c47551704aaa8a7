package entity

import (
	"time"

	"github.com/jhoicas/menu-api/internal/domain/credential"
)

// Restaurant representa la cuenta de un restaurante (principal y raíz del catálogo).
// Borrarlo elimina en cascada sus categorías y, a través de ellas, sus platillos.
type Restaurant struct {
	ID           string
	Name         string // único
	PasswordHash string // bcrypt, nunca el texto plano
	Schedule     string
	Location     string
	Description  string
	Image        *string // URL pública; nil si no hay imagen
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetPassword calcula y guarda el hash de la contraseña.
func (r *Restaurant) SetPassword(plain string) error {
	hash, err := credential.Hash(plain)
	if err != nil {
		return err
	}
	r.PasswordHash = hash
	return nil
}

// CheckPassword compara en tiempo constante contra el hash guardado.
func (r *Restaurant) CheckPassword(plain string) bool {
	return credential.Verify(r.PasswordHash, plain)
}
