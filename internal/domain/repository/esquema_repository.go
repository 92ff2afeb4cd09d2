package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// EsquemaRepository define el puerto de persistencia para esquemas personalizados.
type EsquemaRepository interface {
	Create(esquema *entity.EsquemaPersonalizado) error
	// GetByID devuelve nil si el esquema no existe o está soft-borrado.
	GetByID(id string) (*entity.EsquemaPersonalizado, error)
	// GetActivoPorTriple busca el esquema activo para (empresa, tipo, subtipo).
	// empresaID nil busca esquemas globales. Devuelve nil si no hay activo.
	GetActivoPorTriple(empresaID *string, tipo entity.EntidadTipo, subTipo string) (*entity.EsquemaPersonalizado, error)
	// ListActivos lista los esquemas activos de un tipo, ordenados por orden y nombre.
	ListActivos(empresaID *string, tipo entity.EntidadTipo) ([]*entity.EsquemaPersonalizado, error)
	Update(esquema *entity.EsquemaPersonalizado) error
	// Desactivar marca el esquema como inactivo (soft-delete). No cascada.
	Desactivar(id string, actor string) error
}
