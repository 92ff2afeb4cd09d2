package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// EntidadDinamicaRepository define el puerto de persistencia para entidades dinámicas.
type EntidadDinamicaRepository interface {
	Create(din *entity.EntidadDinamica) error
	// GetByID devuelve nil si no existe o está soft-borrada.
	GetByID(id string) (*entity.EntidadDinamica, error)
	// Update reemplaza datos, estado y etiquetas; bumpea ModificadoEn/ModificadoPor.
	Update(din *entity.EntidadDinamica) error
	// Desactivar soft-borra la entidad dinámica (cascada desde su dueño estático).
	Desactivar(id string, actor string) error
}
