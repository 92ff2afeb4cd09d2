package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// RelacionRepository define el puerto de persistencia para relaciones agente-cliente.
type RelacionRepository interface {
	Create(relacion *entity.Relacion) error
	GetByID(id string) (*entity.Relacion, error)
	ListByEmpresa(empresaID string, agenteID string, limit, offset int) ([]*entity.Relacion, error)
	Update(relacion *entity.Relacion) error
	Desactivar(id string, actor string) error
}
