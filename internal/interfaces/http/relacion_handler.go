package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/dto"
)

// RelacionHandler maneja las peticiones HTTP de relaciones agente-cliente.
type RelacionHandler struct {
	uc *crm.RelacionUseCase
}

// NewRelacionHandler construye el handler.
func NewRelacionHandler(uc *crm.RelacionUseCase) *RelacionHandler {
	return &RelacionHandler{uc: uc}
}

// Create POST /api/relaciones
func (h *RelacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearRelacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/relaciones/:id
func (h *RelacionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/relaciones?agenteId=...&limit=20&offset=0
func (h *RelacionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.Listar(GetEmpresaID(c), c.Query("agenteId"), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/relaciones/:id
func (h *RelacionHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarRelacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/relaciones/:id
func (h *RelacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
