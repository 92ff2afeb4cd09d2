package repository

import "github.com/martinuzal/pharmind-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error)
}
