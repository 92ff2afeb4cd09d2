package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/dto"
)

// AgenteHandler maneja las peticiones HTTP de agentes.
type AgenteHandler struct {
	uc *crm.AgenteUseCase
}

// NewAgenteHandler construye el handler.
func NewAgenteHandler(uc *crm.AgenteUseCase) *AgenteHandler {
	return &AgenteHandler{uc: uc}
}

// Create POST /api/agentes
func (h *AgenteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAgenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/agentes/:id
func (h *AgenteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/agentes?q=lopez&limit=20&offset=0
func (h *AgenteHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.Listar(GetEmpresaID(c), c.Query("q"), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/agentes/:id
func (h *AgenteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarAgenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/agentes/:id
func (h *AgenteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
