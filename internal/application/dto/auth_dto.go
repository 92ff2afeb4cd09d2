package dto

import "time"

// RegisterRequest alta de usuario dentro de una empresa existente.
type RegisterRequest struct {
	EmpresaID string `json:"empresaId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
	Role      string `json:"role"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública del usuario (sin hash).
type UsuarioResponse struct {
	ID           string    `json:"id"`
	EmpresaID    string    `json:"empresaId"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Role         string    `json:"role"`
	Estado       string    `json:"estado"`
	CreadoEn     time.Time `json:"creadoEn"`
	ModificadoEn time.Time `json:"modificadoEn"`
}

// LoginResponse token firmado + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
