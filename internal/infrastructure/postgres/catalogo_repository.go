package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación de CatalogoRepository: regiones, distritos,
// managers y productos en un solo adaptador (tablas chicas, solo referencia).
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

// CreateRegion persiste una región.
func (r *CatalogoRepo) CreateRegion(region *entity.Region) error {
	query := `INSERT INTO regiones (id, empresa_id, nombre, codigo, creado_en) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		region.ID, region.EmpresaID, region.Nombre, region.Codigo, region.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

// GetRegion obtiene una región por ID.
func (r *CatalogoRepo) GetRegion(id string) (*entity.Region, error) {
	var reg entity.Region
	err := r.q.QueryRow(context.Background(),
		`SELECT id, empresa_id, nombre, codigo, creado_en FROM regiones WHERE id = $1`, id).
		Scan(&reg.ID, &reg.EmpresaID, &reg.Nombre, &reg.Codigo, &reg.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}

// ListRegiones lista las regiones de una empresa.
func (r *CatalogoRepo) ListRegiones(empresaID string) ([]*entity.Region, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, empresa_id, nombre, codigo, creado_en FROM regiones WHERE empresa_id = $1 ORDER BY nombre`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list regiones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Region
	for rows.Next() {
		var reg entity.Region
		if err := rows.Scan(&reg.ID, &reg.EmpresaID, &reg.Nombre, &reg.Codigo, &reg.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

// CreateDistrito persiste un distrito.
func (r *CatalogoRepo) CreateDistrito(distrito *entity.Distrito) error {
	query := `INSERT INTO distritos (id, region_id, nombre, codigo, creado_en) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		distrito.ID, distrito.RegionID, distrito.Nombre, distrito.Codigo, distrito.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distrito: %w", err)
	}
	return nil
}

// GetDistrito obtiene un distrito por ID.
func (r *CatalogoRepo) GetDistrito(id string) (*entity.Distrito, error) {
	var d entity.Distrito
	err := r.q.QueryRow(context.Background(),
		`SELECT id, region_id, nombre, codigo, creado_en FROM distritos WHERE id = $1`, id).
		Scan(&d.ID, &d.RegionID, &d.Nombre, &d.Codigo, &d.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distrito: %w", err)
	}
	return &d, nil
}

// ListDistritos lista los distritos de una región.
func (r *CatalogoRepo) ListDistritos(regionID string) ([]*entity.Distrito, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, region_id, nombre, codigo, creado_en FROM distritos WHERE region_id = $1 ORDER BY nombre`, regionID)
	if err != nil {
		return nil, fmt.Errorf("list distritos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distrito
	for rows.Next() {
		var d entity.Distrito
		if err := rows.Scan(&d.ID, &d.RegionID, &d.Nombre, &d.Codigo, &d.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan distrito: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CreateManager persiste un manager.
func (r *CatalogoRepo) CreateManager(manager *entity.Manager) error {
	query := `INSERT INTO managers (id, empresa_id, nombre, email, creado_en) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		manager.ID, manager.EmpresaID, manager.Nombre, manager.Email, manager.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetManager obtiene un manager por ID.
func (r *CatalogoRepo) GetManager(id string) (*entity.Manager, error) {
	var m entity.Manager
	err := r.q.QueryRow(context.Background(),
		`SELECT id, empresa_id, nombre, email, creado_en FROM managers WHERE id = $1`, id).
		Scan(&m.ID, &m.EmpresaID, &m.Nombre, &m.Email, &m.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return &m, nil
}

// ListManagers lista los managers de una empresa.
func (r *CatalogoRepo) ListManagers(empresaID string) ([]*entity.Manager, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, empresa_id, nombre, email, creado_en FROM managers WHERE empresa_id = $1 ORDER BY nombre`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Manager
	for rows.Next() {
		var m entity.Manager
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.Nombre, &m.Email, &m.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CreateProducto persiste un producto del portafolio.
func (r *CatalogoRepo) CreateProducto(producto *entity.Producto) error {
	query := `INSERT INTO productos (id, empresa_id, nombre, codigo_atc, descripcion, creado_en) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.EmpresaID, producto.Nombre, producto.CodigoATC, producto.Descripcion, producto.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetProducto obtiene un producto por ID.
func (r *CatalogoRepo) GetProducto(id string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, empresa_id, nombre, codigo_atc, descripcion, creado_en FROM productos WHERE id = $1`, id).
		Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.CodigoATC, &p.Descripcion, &p.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListProductos lista los productos de una empresa.
func (r *CatalogoRepo) ListProductos(empresaID string) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, empresa_id, nombre, codigo_atc, descripcion, creado_en FROM productos WHERE empresa_id = $1 ORDER BY nombre`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.CodigoATC, &p.Descripcion, &p.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
