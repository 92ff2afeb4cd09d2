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

var _ repository.RelacionRepository = (*RelacionRepo)(nil)

// RelacionRepo implementación de RelacionRepository (usable con pool o tx).
type RelacionRepo struct {
	q Querier
}

// NewRelacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRelacionRepository(q Querier) *RelacionRepo {
	return &RelacionRepo{q: q}
}

// Create persiste una nueva relación agente-cliente.
func (r *RelacionRepo) Create(relacion *entity.Relacion) error {
	query := `
		INSERT INTO relaciones (id, empresa_id, cliente_principal_id, cliente_secundario1_id,
			cliente_secundario2_id, agente_id, tipo, estado, fecha_inicio, sub_tipo,
			esquema_id, dinamica_id, activo, creado_por, modificado_por, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		relacion.ID, relacion.EmpresaID, relacion.ClientePrincipalID, relacion.ClienteSecundario1ID,
		relacion.ClienteSecundario2ID, relacion.AgenteID, relacion.Tipo, relacion.Estado,
		relacion.FechaInicio, relacion.SubTipo, relacion.EsquemaID, relacion.DinamicaID,
		relacion.Activo, relacion.CreadoPor, relacion.ModificadoPor, relacion.CreadoEn, relacion.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert relacion: %w", err)
	}
	return nil
}

// GetByID obtiene una relación activa con los nombres de cliente principal y agente expandidos.
func (r *RelacionRepo) GetByID(id string) (*entity.Relacion, error) {
	query := `
		SELECT ` + relacionSelect + `
		WHERE rel.id = $1 AND rel.activo`
	var rel entity.Relacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(relacionDest(&rel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get relacion: %w", err)
	}
	return &rel, nil
}

// ListByEmpresa lista relaciones activas de la empresa; agenteID vacío lista todas.
func (r *RelacionRepo) ListByEmpresa(empresaID string, agenteID string, limit, offset int) ([]*entity.Relacion, error) {
	query := `
		SELECT ` + relacionSelect + `
		WHERE rel.empresa_id = $1 AND rel.activo
		  AND ($2 = '' OR rel.agente_id = $2)
		ORDER BY rel.fecha_inicio DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, agenteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list relaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Relacion
	for rows.Next() {
		var rel entity.Relacion
		if err := rows.Scan(relacionDest(&rel)...); err != nil {
			return nil, fmt.Errorf("scan relacion: %w", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}

// Update actualiza las columnas estáticas de la relación.
func (r *RelacionRepo) Update(relacion *entity.Relacion) error {
	query := `
		UPDATE relaciones
		SET cliente_secundario1_id = $2, cliente_secundario2_id = $3, tipo = $4, estado = $5,
		    esquema_id = $6, dinamica_id = $7, modificado_por = $8, modificado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		relacion.ID, relacion.ClienteSecundario1ID, relacion.ClienteSecundario2ID,
		relacion.Tipo, relacion.Estado, relacion.EsquemaID, relacion.DinamicaID,
		relacion.ModificadoPor, relacion.ModificadoEn,
	)
	if err != nil {
		return fmt.Errorf("update relacion: %w", err)
	}
	return nil
}

// Desactivar soft-borra la relación.
func (r *RelacionRepo) Desactivar(id string, actor string) error {
	query := `UPDATE relaciones SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar relacion: %w", err)
	}
	return nil
}

const relacionSelect = `rel.id, rel.empresa_id, rel.cliente_principal_id, rel.cliente_secundario1_id,
		       rel.cliente_secundario2_id, rel.agente_id, rel.tipo, rel.estado, rel.fecha_inicio,
		       rel.sub_tipo, rel.esquema_id, rel.dinamica_id,
		       COALESCE(c.nombre, ''), COALESCE(a.nombre, ''),
		       rel.activo, rel.creado_por, rel.modificado_por, rel.creado_en, rel.modificado_en
		FROM relaciones rel
		LEFT JOIN clientes c ON c.id = rel.cliente_principal_id
		LEFT JOIN agentes a ON a.id = rel.agente_id`

func relacionDest(rel *entity.Relacion) []any {
	return []any{
		&rel.ID, &rel.EmpresaID, &rel.ClientePrincipalID, &rel.ClienteSecundario1ID,
		&rel.ClienteSecundario2ID, &rel.AgenteID, &rel.Tipo, &rel.Estado, &rel.FechaInicio,
		&rel.SubTipo, &rel.EsquemaID, &rel.DinamicaID,
		&rel.ClientePrincipalNombre, &rel.AgenteNombre,
		&rel.Activo, &rel.CreadoPor, &rel.ModificadoPor, &rel.CreadoEn, &rel.ModificadoEn,
	}
}
