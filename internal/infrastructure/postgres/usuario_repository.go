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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, empresa_id, email, password_hash, nombre, role, estado, creado_en, modificado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.EmpresaID, usuario.Email, usuario.PasswordHash,
		usuario.Nombre, usuario.Role, usuario.Estado, usuario.CreadoEn, usuario.ModificadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, empresa_id, email, password_hash, nombre, role, estado, creado_en, modificado_en
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByEmail busca un usuario por email (global, para login).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, empresa_id, email, password_hash, nombre, role, estado, creado_en, modificado_en
		FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// GetByEmailAndEmpresa busca un usuario por email dentro de una empresa.
func (r *UsuarioRepo) GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error) {
	query := `
		SELECT id, empresa_id, email, password_hash, nombre, role, estado, creado_en, modificado_en
		FROM usuarios WHERE email = $1 AND empresa_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email, empresaID))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Role, &u.Estado,
		&u.CreadoEn, &u.ModificadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
