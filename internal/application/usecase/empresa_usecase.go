package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// EmpresaUseCase casos de uso de empresas (tenants).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con el puerto de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Crear da de alta una empresa. Devuelve ErrInvalidInput si falta el nombre.
func (uc *EmpresaUseCase) Crear(in dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	empresa := &entity.Empresa{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		NIT:      in.NIT,
		Pais:     in.Pais,
		CreadoEn: time.Now(),
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// Obtener devuelve una empresa por ID. ErrNotFound si no existe.
func (uc *EmpresaUseCase) Obtener(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	return toEmpresaResponse(empresa), nil
}

// Listar lista empresas con paginación.
func (uc *EmpresaUseCase) Listar(limit, offset int) ([]*dto.EmpresaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmpresaResponse(e))
	}
	return out, nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:       e.ID,
		Nombre:   e.Nombre,
		NIT:      e.NIT,
		Pais:     e.Pais,
		CreadoEn: e.CreadoEn,
	}
}
