package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// InteraccionRepository define el puerto de persistencia para interacciones.
type InteraccionRepository interface {
	Create(interaccion *entity.Interaccion) error
	GetByID(id string) (*entity.Interaccion, error)
	ListByRelacion(relacionID string, limit, offset int) ([]*entity.Interaccion, error)
	Update(interaccion *entity.Interaccion) error
	Desactivar(id string, actor string) error
}
