package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// DireccionRepository define el puerto de persistencia para direcciones normalizadas.
// Solo alta y lectura: las direcciones extraídas son inmutables.
type DireccionRepository interface {
	Create(dir *entity.Direccion) error
	GetByID(id string) (*entity.Direccion, error)
}
