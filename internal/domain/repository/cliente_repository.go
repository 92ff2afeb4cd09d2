package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	// GetByID devuelve nil si no existe o está soft-borrado. Expande nombres de
	// región y distrito.
	GetByID(id string) (*entity.Cliente, error)
	// ListByEmpresa lista clientes activos con paginación; busqueda filtra por
	// nombre/apellido/institución ya normalizados ("" = sin filtro).
	ListByEmpresa(empresaID string, busqueda string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// Desactivar soft-borra el cliente.
	Desactivar(id string, actor string) error
}
