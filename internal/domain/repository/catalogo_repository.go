package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// CatalogoRepository agrupa los catálogos de referencia (región, distrito, manager,
// producto). Los facades lo usan para validar FKs y expandir nombres.
type CatalogoRepository interface {
	CreateRegion(region *entity.Region) error
	GetRegion(id string) (*entity.Region, error)
	ListRegiones(empresaID string) ([]*entity.Region, error)

	CreateDistrito(distrito *entity.Distrito) error
	GetDistrito(id string) (*entity.Distrito, error)
	ListDistritos(regionID string) ([]*entity.Distrito, error)

	CreateManager(manager *entity.Manager) error
	GetManager(id string) (*entity.Manager, error)
	ListManagers(empresaID string) ([]*entity.Manager, error)

	CreateProducto(producto *entity.Producto) error
	GetProducto(id string) (*entity.Producto, error)
	ListProductos(empresaID string) ([]*entity.Producto, error)
}
