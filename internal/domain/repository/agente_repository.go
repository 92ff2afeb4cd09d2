package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// AgenteRepository define el puerto de persistencia para agentes.
type AgenteRepository interface {
	Create(agente *entity.Agente) error
	GetByID(id string) (*entity.Agente, error)
	ListByEmpresa(empresaID string, busqueda string, limit, offset int) ([]*entity.Agente, error)
	Update(agente *entity.Agente) error
	Desactivar(id string, actor string) error
}
