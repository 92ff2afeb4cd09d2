package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
	"github.com/martinuzal/pharmind-api/pkg/busqueda"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
// La columna nombre_busqueda guarda nombre+apellido normalizados (minúsculas,
// sin acentos) para que ListByEmpresa busque con un LIKE simple.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, empresa_id, nombre, apellido, email, telefono, institucion,
			region_id, distrito_id, sub_tipo, esquema_id, dinamica_id, nombre_busqueda, activo,
			creado_por, modificado_por, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.EmpresaID, cliente.Nombre, cliente.Apellido, cliente.Email,
		cliente.Telefono, cliente.Institucion, cliente.RegionID, cliente.DistritoID,
		cliente.SubTipo, cliente.EsquemaID, cliente.DinamicaID, nombreBusqueda(cliente.Nombre, cliente.Apellido),
		cliente.Activo, cliente.CreadoPor, cliente.ModificadoPor, cliente.CreadoEn, cliente.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente activo con los nombres de región y distrito expandidos.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT c.id, c.empresa_id, c.nombre, c.apellido, c.email, c.telefono, c.institucion,
		       c.region_id, c.distrito_id, c.sub_tipo, c.esquema_id, c.dinamica_id,
		       COALESCE(r.nombre, ''), COALESCE(d.nombre, ''),
		       c.activo, c.creado_por, c.modificado_por, c.creado_en, c.modificado_en
		FROM clientes c
		LEFT JOIN regiones r ON r.id = c.region_id
		LEFT JOIN distritos d ON d.id = c.distrito_id
		WHERE c.id = $1 AND c.activo`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.Institucion,
		&c.RegionID, &c.DistritoID, &c.SubTipo, &c.EsquemaID, &c.DinamicaID,
		&c.RegionNombre, &c.DistritoNombre,
		&c.Activo, &c.CreadoPor, &c.ModificadoPor, &c.CreadoEn, &c.ModificadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista clientes activos con paginación. busquedaNormalizada vacío
// lista todos; si no, filtra por LIKE sobre la columna normalizada.
func (r *ClienteRepo) ListByEmpresa(empresaID string, busquedaNormalizada string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT c.id, c.empresa_id, c.nombre, c.apellido, c.email, c.telefono, c.institucion,
		       c.region_id, c.distrito_id, c.sub_tipo, c.esquema_id, c.dinamica_id,
		       COALESCE(r.nombre, ''), COALESCE(d.nombre, ''),
		       c.activo, c.creado_por, c.modificado_por, c.creado_en, c.modificado_en
		FROM clientes c
		LEFT JOIN regiones r ON r.id = c.region_id
		LEFT JOIN distritos d ON d.id = c.distrito_id
		WHERE c.empresa_id = $1 AND c.activo
		  AND ($2 = '' OR c.nombre_busqueda LIKE '%' || $2 || '%')
		ORDER BY c.nombre, c.apellido
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, busquedaNormalizada, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.EmpresaID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.Institucion,
			&c.RegionID, &c.DistritoID, &c.SubTipo, &c.EsquemaID, &c.DinamicaID,
			&c.RegionNombre, &c.DistritoNombre,
			&c.Activo, &c.CreadoPor, &c.ModificadoPor, &c.CreadoEn, &c.ModificadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza las columnas estáticas del cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, apellido = $3, email = $4, telefono = $5, institucion = $6,
		    region_id = $7, distrito_id = $8, esquema_id = $9, dinamica_id = $10,
		    nombre_busqueda = $11, modificado_por = $12, modificado_en = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Apellido, cliente.Email, cliente.Telefono,
		cliente.Institucion, cliente.RegionID, cliente.DistritoID, cliente.EsquemaID,
		cliente.DinamicaID, nombreBusqueda(cliente.Nombre, cliente.Apellido),
		cliente.ModificadoPor, cliente.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Desactivar soft-borra el cliente.
func (r *ClienteRepo) Desactivar(id string, actor string) error {
	query := `UPDATE clientes SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar cliente: %w", err)
	}
	return nil
}

func nombreBusqueda(nombre, apellido string) string {
	return busqueda.Normalizar(strings.TrimSpace(nombre + " " + apellido))
}
