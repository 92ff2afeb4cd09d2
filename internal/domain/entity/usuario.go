package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin         = "admin"
	RoleGerente       = "gerente"
	RoleRepresentante = "representante"
)

// Usuario cuenta de acceso al CRM, ligada a una empresa.
type Usuario struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string
	Nombre       string
	Role         string
	Estado       string // "active" | "disabled"
	CreadoEn     time.Time
	ModificadoEn time.Time
}
