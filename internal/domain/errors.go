package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError detalla referencias faltantes o campos inválidos de una petición,
// una por una, para que el cliente pueda corregirlas en un solo round-trip.
type ValidationError struct {
	Referencias []string // ej. "region: no existe", "esquemaId: requerido"
}

func (e *ValidationError) Error() string {
	return "entrada inválida: " + strings.Join(e.Referencias, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Agregar suma una referencia inválida con formato "campo: motivo".
func (e *ValidationError) Agregar(campo, motivo string) {
	e.Referencias = append(e.Referencias, fmt.Sprintf("%s: %s", campo, motivo))
}

// Vacio indica que no se acumuló ninguna referencia inválida.
func (e *ValidationError) Vacio() bool { return len(e.Referencias) == 0 }
