package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ repository.InteraccionRepository = (*InteraccionRepo)(nil)

// InteraccionRepo implementación de InteraccionRepository (usable con pool o tx).
type InteraccionRepo struct {
	q Querier
}

// NewInteraccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInteraccionRepository(q Querier) *InteraccionRepo {
	return &InteraccionRepo{q: q}
}

// Create persiste una nueva interacción.
func (r *InteraccionRepo) Create(interaccion *entity.Interaccion) error {
	query := `
		INSERT INTO interacciones (id, empresa_id, relacion_id, agente_id, cliente_id, producto_id,
			tipo, notas, fecha, duracion_minutos, sub_tipo, esquema_id, dinamica_id, activo,
			creado_por, modificado_por, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		interaccion.ID, interaccion.EmpresaID, interaccion.RelacionID, interaccion.AgenteID,
		interaccion.ClienteID, interaccion.ProductoID, interaccion.Tipo, interaccion.Notas,
		interaccion.Fecha, interaccion.DuracionMinutos, interaccion.SubTipo,
		interaccion.EsquemaID, interaccion.DinamicaID, interaccion.Activo,
		interaccion.CreadoPor, interaccion.ModificadoPor, interaccion.CreadoEn, interaccion.ModificadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert interaccion: %w", err)
	}
	return nil
}

// GetByID obtiene una interacción activa con nombres de agente, cliente y producto expandidos.
func (r *InteraccionRepo) GetByID(id string) (*entity.Interaccion, error) {
	query := `
		SELECT ` + interaccionSelect + `
		WHERE i.id = $1 AND i.activo`
	var in entity.Interaccion
	err := r.q.QueryRow(context.Background(), query, id).Scan(interaccionDest(&in)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interaccion: %w", err)
	}
	return &in, nil
}

// ListByRelacion lista interacciones activas de una relación, más recientes primero.
func (r *InteraccionRepo) ListByRelacion(relacionID string, limit, offset int) ([]*entity.Interaccion, error) {
	query := `
		SELECT ` + interaccionSelect + `
		WHERE i.relacion_id = $1 AND i.activo
		ORDER BY i.fecha DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, relacionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interacciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Interaccion
	for rows.Next() {
		var in entity.Interaccion
		if err := rows.Scan(interaccionDest(&in)...); err != nil {
			return nil, fmt.Errorf("scan interaccion: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}

// Update actualiza las columnas estáticas de la interacción.
func (r *InteraccionRepo) Update(interaccion *entity.Interaccion) error {
	query := `
		UPDATE interacciones
		SET producto_id = $2, tipo = $3, notas = $4, fecha = $5, duracion_minutos = $6,
		    esquema_id = $7, dinamica_id = $8, modificado_por = $9, modificado_en = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		interaccion.ID, interaccion.ProductoID, interaccion.Tipo, interaccion.Notas,
		interaccion.Fecha, interaccion.DuracionMinutos, interaccion.EsquemaID,
		interaccion.DinamicaID, interaccion.ModificadoPor, interaccion.ModificadoEn,
	)
	if err != nil {
		return fmt.Errorf("update interaccion: %w", err)
	}
	return nil
}

// Desactivar soft-borra la interacción.
func (r *InteraccionRepo) Desactivar(id string, actor string) error {
	query := `UPDATE interacciones SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar interaccion: %w", err)
	}
	return nil
}

const interaccionSelect = `i.id, i.empresa_id, i.relacion_id, i.agente_id, i.cliente_id, i.producto_id,
		       i.tipo, i.notas, i.fecha, i.duracion_minutos, i.sub_tipo, i.esquema_id, i.dinamica_id,
		       COALESCE(a.nombre, ''), COALESCE(c.nombre, ''), COALESCE(p.nombre, ''),
		       i.activo, i.creado_por, i.modificado_por, i.creado_en, i.modificado_en
		FROM interacciones i
		LEFT JOIN agentes a ON a.id = i.agente_id
		LEFT JOIN clientes c ON c.id = i.cliente_id
		LEFT JOIN productos p ON p.id = i.producto_id`

func interaccionDest(in *entity.Interaccion) []any {
	return []any{
		&in.ID, &in.EmpresaID, &in.RelacionID, &in.AgenteID, &in.ClienteID, &in.ProductoID,
		&in.Tipo, &in.Notas, &in.Fecha, &in.DuracionMinutos, &in.SubTipo, &in.EsquemaID, &in.DinamicaID,
		&in.AgenteNombre, &in.ClienteNombre, &in.ProductoNombre,
		&in.Activo, &in.CreadoPor, &in.ModificadoPor, &in.CreadoEn, &in.ModificadoEn,
	}
}
