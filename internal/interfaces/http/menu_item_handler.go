package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// MenuItemHandler maneja los platillos (protegido).
type MenuItemHandler struct {
	uc  *catalog.MenuItemUseCase
	log *logger.Logger
}

// NewMenuItemHandler construye el handler.
func NewMenuItemHandler(uc *catalog.MenuItemUseCase, log *logger.Logger) *MenuItemHandler {
	return &MenuItemHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Agregar platillo a una categoría
// @Tags         items
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true   "ID de la categoría"
// @Param        name         formData  string  true   "Nombre"
// @Param        price        formData  string  true   "Precio (hasta 2 decimales)"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    false  "Imagen"
// @Success      201  {object}  dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/items [post]
func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	image, err := readImage(c, "image")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetRestaurantID(c), c.Params("id"), in, image)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar platillo (campos ausentes no cambian)
// @Tags         items
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true   "ID del platillo"
// @Param        name         formData  string  false  "Nombre"
// @Param        price        formData  string  false  "Precio"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    false  "Nueva imagen"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *MenuItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if isJSON(c) {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	} else {
		in.Name = optionalFormValue(c, "name")
		in.Price = optionalFormValue(c, "price")
		in.Description = optionalFormValue(c, "description")
	}
	image, err := readImage(c, "image")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetRestaurantID(c), c.Params("id"), in, image)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar platillo
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del platillo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *MenuItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetRestaurantID(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
