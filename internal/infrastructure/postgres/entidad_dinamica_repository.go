package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ repository.EntidadDinamicaRepository = (*EntidadDinamicaRepo)(nil)

// EntidadDinamicaRepo implementación de EntidadDinamicaRepository. El payload
// dinámico se guarda tal cual en una columna JSONB; la decodificación tolerante
// a blobs corruptos es responsabilidad de la capa de aplicación.
type EntidadDinamicaRepo struct {
	q Querier
}

// NewEntidadDinamicaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntidadDinamicaRepository(q Querier) *EntidadDinamicaRepo {
	return &EntidadDinamicaRepo{q: q}
}

// Create persiste una nueva entidad dinámica.
func (r *EntidadDinamicaRepo) Create(din *entity.EntidadDinamica) error {
	query := `
		INSERT INTO entidades_dinamicas (id, esquema_id, datos, estado, etiquetas, activo,
			creado_por, modificado_por, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		din.ID, din.EsquemaID, []byte(din.Datos), din.Estado, din.Etiquetas, din.Activo,
		din.CreadoPor, din.ModificadoPor, din.CreadoEn, din.ModificadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert entidad dinamica: %w", err)
	}
	return nil
}

// GetByID obtiene una entidad dinámica activa. Devuelve nil si no existe o está soft-borrada.
func (r *EntidadDinamicaRepo) GetByID(id string) (*entity.EntidadDinamica, error) {
	query := `
		SELECT id, esquema_id, datos, estado, etiquetas, activo,
		       creado_por, modificado_por, creado_en, modificado_en
		FROM entidades_dinamicas WHERE id = $1 AND activo`
	var d entity.EntidadDinamica
	var datos []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.EsquemaID, &datos, &d.Estado, &d.Etiquetas, &d.Activo,
		&d.CreadoPor, &d.ModificadoPor, &d.CreadoEn, &d.ModificadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entidad dinamica: %w", err)
	}
	d.Datos = datos
	return &d, nil
}

// Update reemplaza datos, estado y etiquetas.
func (r *EntidadDinamicaRepo) Update(din *entity.EntidadDinamica) error {
	query := `
		UPDATE entidades_dinamicas
		SET datos = $2, estado = $3, etiquetas = $4, modificado_por = $5, modificado_en = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		din.ID, []byte(din.Datos), din.Estado, din.Etiquetas, din.ModificadoPor, din.ModificadoEn,
	)
	if err != nil {
		return fmt.Errorf("update entidad dinamica: %w", err)
	}
	return nil
}

// Desactivar soft-borra la entidad dinámica (cascada desde su dueño estático).
func (r *EntidadDinamicaRepo) Desactivar(id string, actor string) error {
	query := `UPDATE entidades_dinamicas SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar entidad dinamica: %w", err)
	}
	return nil
}
