package dto

import (
	"encoding/json"
	"time"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
)

// CampoRequest descriptor de campo tal como lo envía el frontend.
type CampoRequest struct {
	Nombre    string   `json:"nombre"`
	Tipo      string   `json:"tipo"`
	Etiqueta  string   `json:"etiqueta"`
	Opciones  []string `json:"opciones"`
	Requerido bool     `json:"requerido"`
}

// CrearEsquemaRequest alta de un esquema personalizado.
type CrearEsquemaRequest struct {
	EntidadTipo     string          `json:"entidadTipo"`
	SubTipo         string          `json:"subTipo"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	Icono           string          `json:"icono"`
	Color           string          `json:"color"`
	Orden           int             `json:"orden"`
	Campos          []CampoRequest  `json:"campos"`
	Validaciones    json.RawMessage `json:"validaciones,omitempty"`
	Correlaciones   json.RawMessage `json:"correlaciones,omitempty"`
	ConfiguracionUI json.RawMessage `json:"configuracionUi,omitempty"`
}

// ActualizarEsquemaRequest parche de un esquema: solo los campos no-nil se aplican.
type ActualizarEsquemaRequest struct {
	Nombre          *string         `json:"nombre"`
	Descripcion     *string         `json:"descripcion"`
	Icono           *string         `json:"icono"`
	Color           *string         `json:"color"`
	Orden           *int            `json:"orden"`
	Campos          []CampoRequest  `json:"campos"` // nil = sin cambio; [] = vaciar
	Validaciones    json.RawMessage `json:"validaciones,omitempty"`
	Correlaciones   json.RawMessage `json:"correlaciones,omitempty"`
	ConfiguracionUI json.RawMessage `json:"configuracionUi,omitempty"`
}

// EsquemaResponse representación de salida de un esquema.
type EsquemaResponse struct {
	ID              string          `json:"id"`
	EmpresaID       *string         `json:"empresaId,omitempty"`
	EntidadTipo     string          `json:"entidadTipo"`
	SubTipo         string          `json:"subTipo"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion,omitempty"`
	Icono           string          `json:"icono,omitempty"`
	Color           string          `json:"color,omitempty"`
	Orden           int             `json:"orden"`
	Activo          bool            `json:"activo"`
	Version         int             `json:"version"`
	Campos          []CampoRequest  `json:"campos"`
	Validaciones    json.RawMessage `json:"validaciones,omitempty"`
	Correlaciones   json.RawMessage `json:"correlaciones,omitempty"`
	ConfiguracionUI json.RawMessage `json:"configuracionUi,omitempty"`
	CreadoEn        time.Time       `json:"creadoEn"`
	ModificadoEn    time.Time       `json:"modificadoEn"`
}

// ToEsquemaResponse mapea la entidad al DTO de salida.
func ToEsquemaResponse(e *entity.EsquemaPersonalizado) *EsquemaResponse {
	if e == nil {
		return nil
	}
	campos := make([]CampoRequest, 0, len(e.Campos))
	for _, c := range e.Campos {
		campos = append(campos, CampoRequest{
			Nombre:    c.Nombre,
			Tipo:      c.Tipo,
			Etiqueta:  c.Etiqueta,
			Opciones:  c.Opciones,
			Requerido: c.Requerido,
		})
	}
	return &EsquemaResponse{
		ID:              e.ID,
		EmpresaID:       e.EmpresaID,
		EntidadTipo:     string(e.EntidadTipo),
		SubTipo:         e.SubTipo,
		Nombre:          e.Nombre,
		Descripcion:     e.Descripcion,
		Icono:           e.Icono,
		Color:           e.Color,
		Orden:           e.Orden,
		Activo:          e.Activo,
		Version:         e.Version,
		Campos:          campos,
		Validaciones:    e.Validaciones,
		Correlaciones:   e.Correlaciones,
		ConfiguracionUI: e.ConfiguracionUI,
		CreadoEn:        e.CreadoEn,
		ModificadoEn:    e.ModificadoEn,
	}
}
