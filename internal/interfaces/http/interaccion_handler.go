package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/dto"
)

// InteraccionHandler maneja las peticiones HTTP de interacciones.
type InteraccionHandler struct {
	uc *crm.InteraccionUseCase
}

// NewInteraccionHandler construye el handler.
func NewInteraccionHandler(uc *crm.InteraccionUseCase) *InteraccionHandler {
	return &InteraccionHandler{uc: uc}
}

// Create POST /api/interacciones
func (h *InteraccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearInteraccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/interacciones/:id
func (h *InteraccionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListByRelacion GET /api/relaciones/:id/interacciones?limit=20&offset=0
func (h *InteraccionHandler) ListByRelacion(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListarPorRelacion(c.Params("id"), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/interacciones/:id
func (h *InteraccionHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarInteraccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/interacciones/:id
func (h *InteraccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
