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

var _ repository.AgenteRepository = (*AgenteRepo)(nil)

// AgenteRepo implementación de AgenteRepository (usable con pool o tx).
type AgenteRepo struct {
	q Querier
}

// NewAgenteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgenteRepository(q Querier) *AgenteRepo {
	return &AgenteRepo{q: q}
}

// Create persiste un nuevo agente.
func (r *AgenteRepo) Create(agente *entity.Agente) error {
	query := `
		INSERT INTO agentes (id, empresa_id, nombre, apellido, email, telefono, manager_id,
			region_id, sub_tipo, esquema_id, dinamica_id, nombre_busqueda, activo,
			creado_por, modificado_por, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		agente.ID, agente.EmpresaID, agente.Nombre, agente.Apellido, agente.Email,
		agente.Telefono, agente.ManagerID, agente.RegionID, agente.SubTipo,
		agente.EsquemaID, agente.DinamicaID, nombreBusqueda(agente.Nombre, agente.Apellido),
		agente.Activo, agente.CreadoPor, agente.ModificadoPor, agente.CreadoEn, agente.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert agente: %w", err)
	}
	return nil
}

// GetByID obtiene un agente activo con los nombres de manager y región expandidos.
func (r *AgenteRepo) GetByID(id string) (*entity.Agente, error) {
	query := `
		SELECT a.id, a.empresa_id, a.nombre, a.apellido, a.email, a.telefono,
		       a.manager_id, a.region_id, a.sub_tipo, a.esquema_id, a.dinamica_id,
		       COALESCE(m.nombre, ''), COALESCE(r.nombre, ''),
		       a.activo, a.creado_por, a.modificado_por, a.creado_en, a.modificado_en
		FROM agentes a
		LEFT JOIN managers m ON m.id = a.manager_id
		LEFT JOIN regiones r ON r.id = a.region_id
		WHERE a.id = $1 AND a.activo`
	var a entity.Agente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.EmpresaID, &a.Nombre, &a.Apellido, &a.Email, &a.Telefono,
		&a.ManagerID, &a.RegionID, &a.SubTipo, &a.EsquemaID, &a.DinamicaID,
		&a.ManagerNombre, &a.RegionNombre,
		&a.Activo, &a.CreadoPor, &a.ModificadoPor, &a.CreadoEn, &a.ModificadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agente: %w", err)
	}
	return &a, nil
}

// ListByEmpresa lista agentes activos con paginación y búsqueda normalizada.
func (r *AgenteRepo) ListByEmpresa(empresaID string, busquedaNormalizada string, limit, offset int) ([]*entity.Agente, error) {
	query := `
		SELECT a.id, a.empresa_id, a.nombre, a.apellido, a.email, a.telefono,
		       a.manager_id, a.region_id, a.sub_tipo, a.esquema_id, a.dinamica_id,
		       COALESCE(m.nombre, ''), COALESCE(r.nombre, ''),
		       a.activo, a.creado_por, a.modificado_por, a.creado_en, a.modificado_en
		FROM agentes a
		LEFT JOIN managers m ON m.id = a.manager_id
		LEFT JOIN regiones r ON r.id = a.region_id
		WHERE a.empresa_id = $1 AND a.activo
		  AND ($2 = '' OR a.nombre_busqueda LIKE '%' || $2 || '%')
		ORDER BY a.nombre, a.apellido
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, busquedaNormalizada, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agentes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agente
	for rows.Next() {
		var a entity.Agente
		if err := rows.Scan(
			&a.ID, &a.EmpresaID, &a.Nombre, &a.Apellido, &a.Email, &a.Telefono,
			&a.ManagerID, &a.RegionID, &a.SubTipo, &a.EsquemaID, &a.DinamicaID,
			&a.ManagerNombre, &a.RegionNombre,
			&a.Activo, &a.CreadoPor, &a.ModificadoPor, &a.CreadoEn, &a.ModificadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan agente: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza las columnas estáticas del agente.
func (r *AgenteRepo) Update(agente *entity.Agente) error {
	query := `
		UPDATE agentes
		SET nombre = $2, apellido = $3, email = $4, telefono = $5, manager_id = $6,
		    region_id = $7, esquema_id = $8, dinamica_id = $9, nombre_busqueda = $10,
		    modificado_por = $11, modificado_en = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		agente.ID, agente.Nombre, agente.Apellido, agente.Email, agente.Telefono,
		agente.ManagerID, agente.RegionID, agente.EsquemaID, agente.DinamicaID,
		nombreBusqueda(agente.Nombre, agente.Apellido),
		agente.ModificadoPor, agente.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update agente: %w", err)
	}
	return nil
}

// Desactivar soft-borra el agente.
func (r *AgenteRepo) Desactivar(id string, actor string) error {
	query := `UPDATE agentes SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar agente: %w", err)
	}
	return nil
}
