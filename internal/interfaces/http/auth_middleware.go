package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/jwt"
)

// Locals keys para el restaurante autenticado y el token en Fiber.
const (
	LocalRestaurantID = "restaurant_id"
	LocalTokenID      = "token_id"
	LocalTokenExp     = "token_exp"
)

// revocationChecker contrato mínimo para consultar la lista de tokens revocados.
// Lo implementa *auth.AuthUseCase.
type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados por logout y deja
// RestaurantID, jti y expiración en c.Locals. checker puede ser nil.
func AuthMiddleware(jwtSecret string, checker revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if checker != nil && claims.ID != "" {
			revoked, err := checker.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TOKEN_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_REVOKED", Message: "la sesión fue cerrada"})
			}
		}
		c.Locals(LocalRestaurantID, claims.RestaurantID)
		c.Locals(LocalTokenID, claims.ID)
		c.Locals(LocalTokenExp, claims.ExpiresAtTime())
		return c.Next()
	}
}

// GetRestaurantID devuelve el RestaurantID del contexto (después del middleware de auth).
func GetRestaurantID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRestaurantID).(string)
	return s
}

func getTokenID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTokenID).(string)
	return s
}

func getTokenExp(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExp).(time.Time)
	return t
}
