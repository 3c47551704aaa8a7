package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// DashboardHandler expone el menú del restaurante autenticado.
type DashboardHandler struct {
	uc  *catalog.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *catalog.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve el perfil del restaurante con sus categorías y platillos.
// GET /api/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetRestaurantID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
