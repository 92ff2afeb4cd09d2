package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ repository.EsquemaRepository = (*EsquemaRepo)(nil)

// EsquemaRepo implementación de EsquemaRepository (usable con pool o tx).
// Campos y los blobs opacos (validaciones, correlaciones, configuracion_ui)
// viven en columnas JSONB.
type EsquemaRepo struct {
	q Querier
}

// NewEsquemaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEsquemaRepository(q Querier) *EsquemaRepo {
	return &EsquemaRepo{q: q}
}

const esquemaColumns = `id, empresa_id, entidad_tipo, sub_tipo, nombre, descripcion, icono, color,
		orden, activo, version, campos, validaciones, correlaciones, configuracion_ui,
		creado_por, modificado_por, creado_en, modificado_en`

// Create persiste un nuevo esquema.
func (r *EsquemaRepo) Create(esquema *entity.EsquemaPersonalizado) error {
	campos, err := json.Marshal(esquema.Campos)
	if err != nil {
		return fmt.Errorf("marshal campos: %w", err)
	}
	query := `
		INSERT INTO esquemas (` + esquemaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = r.q.Exec(context.Background(), query,
		esquema.ID, esquema.EmpresaID, string(esquema.EntidadTipo), esquema.SubTipo,
		esquema.Nombre, esquema.Descripcion, esquema.Icono, esquema.Color,
		esquema.Orden, esquema.Activo, esquema.Version, campos,
		rawOrNil(esquema.Validaciones), rawOrNil(esquema.Correlaciones), rawOrNil(esquema.ConfiguracionUI),
		esquema.CreadoPor, esquema.ModificadoPor, esquema.CreadoEn, esquema.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert esquema: %w", err)
	}
	return nil
}

// GetByID obtiene un esquema por ID (activo o no). Devuelve nil si no existe.
func (r *EsquemaRepo) GetByID(id string) (*entity.EsquemaPersonalizado, error) {
	query := `SELECT ` + esquemaColumns + ` FROM esquemas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetActivoPorTriple busca el esquema activo para (empresa, tipo, subtipo).
// empresa_id NULL son esquemas globales; IS NOT DISTINCT FROM compara ambos casos.
func (r *EsquemaRepo) GetActivoPorTriple(empresaID *string, tipo entity.EntidadTipo, subTipo string) (*entity.EsquemaPersonalizado, error) {
	query := `
		SELECT ` + esquemaColumns + `
		FROM esquemas
		WHERE activo AND empresa_id IS NOT DISTINCT FROM $1 AND entidad_tipo = $2 AND sub_tipo = $3
		ORDER BY version DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, empresaID, string(tipo), subTipo))
}

// ListActivos lista los esquemas activos de un tipo, ordenados por orden y nombre.
func (r *EsquemaRepo) ListActivos(empresaID *string, tipo entity.EntidadTipo) ([]*entity.EsquemaPersonalizado, error) {
	query := `
		SELECT ` + esquemaColumns + `
		FROM esquemas
		WHERE activo AND empresa_id IS NOT DISTINCT FROM $1 AND entidad_tipo = $2
		ORDER BY orden, nombre`
	rows, err := r.q.Query(context.Background(), query, empresaID, string(tipo))
	if err != nil {
		return nil, fmt.Errorf("list esquemas: %w", err)
	}
	defer rows.Close()
	var list []*entity.EsquemaPersonalizado
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update reemplaza la definición completa del esquema.
func (r *EsquemaRepo) Update(esquema *entity.EsquemaPersonalizado) error {
	campos, err := json.Marshal(esquema.Campos)
	if err != nil {
		return fmt.Errorf("marshal campos: %w", err)
	}
	query := `
		UPDATE esquemas
		SET sub_tipo = $2, nombre = $3, descripcion = $4, icono = $5, color = $6, orden = $7,
		    activo = $8, version = $9, campos = $10, validaciones = $11, correlaciones = $12,
		    configuracion_ui = $13, modificado_por = $14, modificado_en = $15
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		esquema.ID, esquema.SubTipo, esquema.Nombre, esquema.Descripcion, esquema.Icono,
		esquema.Color, esquema.Orden, esquema.Activo, esquema.Version, campos,
		rawOrNil(esquema.Validaciones), rawOrNil(esquema.Correlaciones), rawOrNil(esquema.ConfiguracionUI),
		esquema.ModificadoPor, esquema.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update esquema: %w", err)
	}
	return nil
}

// Desactivar marca el esquema como inactivo. Las entidades que lo referencian no se tocan.
func (r *EsquemaRepo) Desactivar(id string, actor string) error {
	query := `UPDATE esquemas SET activo = false, modificado_por = $2, modificado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, actor)
	if err != nil {
		return fmt.Errorf("desactivar esquema: %w", err)
	}
	return nil
}

func (r *EsquemaRepo) scanOne(row pgx.Row) (*entity.EsquemaPersonalizado, error) {
	e, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *EsquemaRepo) scanRow(row pgx.Row) (*entity.EsquemaPersonalizado, error) {
	var e entity.EsquemaPersonalizado
	var tipo string
	var campos, validaciones, correlaciones, configuracionUI []byte
	err := row.Scan(
		&e.ID, &e.EmpresaID, &tipo, &e.SubTipo, &e.Nombre, &e.Descripcion, &e.Icono, &e.Color,
		&e.Orden, &e.Activo, &e.Version, &campos, &validaciones, &correlaciones, &configuracionUI,
		&e.CreadoPor, &e.ModificadoPor, &e.CreadoEn, &e.ModificadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan esquema: %w", err)
	}
	e.EntidadTipo = entity.EntidadTipo(tipo)
	if len(campos) > 0 {
		if err := json.Unmarshal(campos, &e.Campos); err != nil {
			return nil, fmt.Errorf("unmarshal campos: %w", err)
		}
	}
	e.Validaciones = json.RawMessage(validaciones)
	e.Correlaciones = json.RawMessage(correlaciones)
	e.ConfiguracionUI = json.RawMessage(configuracionUI)
	return &e, nil
}

// rawOrNil convierte un RawMessage vacío en NULL para no guardar strings vacíos en JSONB.
func rawOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
