package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/application/esquema"
)

// EsquemaHandler maneja las peticiones HTTP de esquemas personalizados.
type EsquemaHandler struct {
	uc *esquema.UseCase
}

// NewEsquemaHandler construye el handler.
func NewEsquemaHandler(uc *esquema.UseCase) *EsquemaHandler {
	return &EsquemaHandler{uc: uc}
}

// Create POST /api/esquemas
func (h *EsquemaHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	var in dto.CrearEsquemaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(&empresaID, GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/esquemas/:id
func (h *EsquemaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetActivo GET /api/esquemas/activo?tipo=Cliente&subTipo=medico
// Devuelve el esquema activo del triple (empresa, tipo, subtipo).
func (h *EsquemaHandler) GetActivo(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	out, err := h.uc.ObtenerPorTipoYSubTipo(&empresaID, c.Query("tipo"), c.Query("subTipo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/esquemas?tipo=Cliente
func (h *EsquemaHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	list, err := h.uc.ListarActivos(&empresaID, c.Query("tipo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/esquemas/:id
func (h *EsquemaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarEsquemaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/esquemas/:id (soft-delete, no cascada)
func (h *EsquemaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Params("id"), GetUserID(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
