package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// CatalogoUseCase casos de uso de los catálogos de referencia: regiones,
// distritos, managers y productos.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso con el puerto de persistencia.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// CrearRegion da de alta una región de la empresa.
func (uc *CatalogoUseCase) CrearRegion(empresaID string, in dto.CrearRegionRequest) (*dto.RegionResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	region := &entity.Region{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nombre:    in.Nombre,
		Codigo:    in.Codigo,
		CreadoEn:  time.Now(),
	}
	if err := uc.repo.CreateRegion(region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

// ListarRegiones lista las regiones de la empresa.
func (uc *CatalogoUseCase) ListarRegiones(empresaID string) ([]*dto.RegionResponse, error) {
	list, err := uc.repo.ListRegiones(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RegionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRegionResponse(r))
	}
	return out, nil
}

// CrearDistrito da de alta un distrito. Valida que la región exista.
func (uc *CatalogoUseCase) CrearDistrito(in dto.CrearDistritoRequest) (*dto.DistritoResponse, error) {
	if in.Nombre == "" || in.RegionID == "" {
		return nil, domain.ErrInvalidInput
	}
	region, err := uc.repo.GetRegion(in.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.ErrNotFound
	}
	distrito := &entity.Distrito{
		ID:       uuid.New().String(),
		RegionID: in.RegionID,
		Nombre:   in.Nombre,
		Codigo:   in.Codigo,
		CreadoEn: time.Now(),
	}
	if err := uc.repo.CreateDistrito(distrito); err != nil {
		return nil, err
	}
	return toDistritoResponse(distrito), nil
}

// ListarDistritos lista los distritos de una región.
func (uc *CatalogoUseCase) ListarDistritos(regionID string) ([]*dto.DistritoResponse, error) {
	list, err := uc.repo.ListDistritos(regionID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DistritoResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDistritoResponse(d))
	}
	return out, nil
}

// CrearManager da de alta un manager de la empresa.
func (uc *CatalogoUseCase) CrearManager(empresaID string, in dto.CrearManagerRequest) (*dto.ManagerResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	manager := &entity.Manager{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nombre:    in.Nombre,
		Email:     in.Email,
		CreadoEn:  time.Now(),
	}
	if err := uc.repo.CreateManager(manager); err != nil {
		return nil, err
	}
	return toManagerResponse(manager), nil
}

// ListarManagers lista los managers de la empresa.
func (uc *CatalogoUseCase) ListarManagers(empresaID string) ([]*dto.ManagerResponse, error) {
	list, err := uc.repo.ListManagers(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toManagerResponse(m))
	}
	return out, nil
}

// CrearProducto da de alta un producto del portafolio promocional.
func (uc *CatalogoUseCase) CrearProducto(empresaID string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Nombre:      in.Nombre,
		CodigoATC:   in.CodigoATC,
		Descripcion: in.Descripcion,
		CreadoEn:    time.Now(),
	}
	if err := uc.repo.CreateProducto(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ListarProductos lista los productos de la empresa.
func (uc *CatalogoUseCase) ListarProductos(empresaID string) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.ListProductos(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

func toRegionResponse(r *entity.Region) *dto.RegionResponse {
	return &dto.RegionResponse{ID: r.ID, EmpresaID: r.EmpresaID, Nombre: r.Nombre, Codigo: r.Codigo, CreadoEn: r.CreadoEn}
}

func toDistritoResponse(d *entity.Distrito) *dto.DistritoResponse {
	return &dto.DistritoResponse{ID: d.ID, RegionID: d.RegionID, Nombre: d.Nombre, Codigo: d.Codigo, CreadoEn: d.CreadoEn}
}

func toManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	return &dto.ManagerResponse{ID: m.ID, EmpresaID: m.EmpresaID, Nombre: m.Nombre, Email: m.Email, CreadoEn: m.CreadoEn}
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{ID: p.ID, EmpresaID: p.EmpresaID, Nombre: p.Nombre, CodigoATC: p.CodigoATC, Descripcion: p.Descripcion, CreadoEn: p.CreadoEn}
}
