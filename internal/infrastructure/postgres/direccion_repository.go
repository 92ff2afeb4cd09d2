package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ repository.DireccionRepository = (*DireccionRepo)(nil)

// DireccionRepo implementación de DireccionRepository. Solo alta y lectura:
// las direcciones extraídas son inmutables.
type DireccionRepo struct {
	q Querier
}

// NewDireccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDireccionRepository(q Querier) *DireccionRepo {
	return &DireccionRepo{q: q}
}

// Create persiste una dirección normalizada. Latitud y longitud van a columnas
// NUMERIC (codec shopspring/decimal registrado en el pool).
func (r *DireccionRepo) Create(dir *entity.Direccion) error {
	query := `
		INSERT INTO direcciones (id, calle, numero, apartamento, colonia, ciudad, estado,
			codigo_postal, pais, referencia, latitud, longitud, creado_por, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		dir.ID, dir.Calle, dir.Numero, dir.Apartamento, dir.Colonia, dir.Ciudad, dir.Estado,
		dir.CodigoPostal, dir.Pais, dir.Referencia, dir.Latitud, dir.Longitud,
		dir.CreadoPor, dir.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert direccion: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID. Devuelve nil si no existe.
func (r *DireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	query := `
		SELECT id, calle, numero, apartamento, colonia, ciudad, estado,
		       codigo_postal, pais, referencia, latitud, longitud, creado_por, creado_en
		FROM direcciones WHERE id = $1`
	var d entity.Direccion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Calle, &d.Numero, &d.Apartamento, &d.Colonia, &d.Ciudad, &d.Estado,
		&d.CodigoPostal, &d.Pais, &d.Referencia, &d.Latitud, &d.Longitud,
		&d.CreadoPor, &d.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get direccion: %w", err)
	}
	return &d, nil
}
