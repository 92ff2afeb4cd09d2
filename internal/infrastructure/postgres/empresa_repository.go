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

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación de EmpresaRepository (usable con pool o tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `INSERT INTO empresas (id, nombre, nit, pais, creado_en) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nombre, empresa.NIT, empresa.Pais, empresa.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, nit, pais, creado_en FROM empresas WHERE id = $1`, id).
		Scan(&e.ID, &e.Nombre, &e.NIT, &e.Pais, &e.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// List lista empresas con paginación.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, nit, pais, creado_en FROM empresas ORDER BY nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.NIT, &e.Pais, &e.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
