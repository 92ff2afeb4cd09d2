package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// EmpresaRepository define el puerto de persistencia para empresas (tenants).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
}
