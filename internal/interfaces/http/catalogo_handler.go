package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/application/usecase"
)

// CatalogoHandler maneja las peticiones HTTP de los catálogos de referencia.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// CreateRegion POST /api/catalogos/regiones
func (h *CatalogoHandler) CreateRegion(c *fiber.Ctx) error {
	var in dto.CrearRegionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearRegion(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRegiones GET /api/catalogos/regiones
func (h *CatalogoHandler) ListRegiones(c *fiber.Ctx) error {
	list, err := h.uc.ListarRegiones(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// CreateDistrito POST /api/catalogos/distritos
func (h *CatalogoHandler) CreateDistrito(c *fiber.Ctx) error {
	var in dto.CrearDistritoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearDistrito(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDistritos GET /api/catalogos/regiones/:id/distritos
func (h *CatalogoHandler) ListDistritos(c *fiber.Ctx) error {
	list, err := h.uc.ListarDistritos(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// CreateManager POST /api/catalogos/managers
func (h *CatalogoHandler) CreateManager(c *fiber.Ctx) error {
	var in dto.CrearManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearManager(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListManagers GET /api/catalogos/managers
func (h *CatalogoHandler) ListManagers(c *fiber.Ctx) error {
	list, err := h.uc.ListarManagers(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// CreateProducto POST /api/catalogos/productos
func (h *CatalogoHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearProducto(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductos GET /api/catalogos/productos
func (h *CatalogoHandler) ListProductos(c *fiber.Ctx) error {
	list, err := h.uc.ListarProductos(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}
