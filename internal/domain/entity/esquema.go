package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// EntidadTipo discrimina a qué entidad de negocio aplica un esquema personalizado.
type EntidadTipo string

const (
	EntidadCliente     EntidadTipo = "Cliente"
	EntidadAgente      EntidadTipo = "Agente"
	EntidadRelacion    EntidadTipo = "Relacion"
	EntidadInteraccion EntidadTipo = "Interaccion"
)

// EntidadTipoValido verifica que el tipo pertenezca al vocabulario cerrado.
func EntidadTipoValido(t EntidadTipo) bool {
	switch t {
	case EntidadCliente, EntidadAgente, EntidadRelacion, EntidadInteraccion:
		return true
	}
	return false
}

// Tipos de campo canónicos del vocabulario de esquemas. Los sinónimos
// (phone/telefono, dropdown/radio, boolean) se normalizan al leer.
const (
	CampoTexto     = "text"
	CampoTextarea  = "textarea"
	CampoNumero    = "number"
	CampoEmail     = "email"
	CampoTelefono  = "tel"
	CampoFecha     = "date"
	CampoCheckbox  = "checkbox"
	CampoSelect    = "select"
	CampoURL       = "url"
	CampoDireccion = "address"
)

// NormalizarTipoCampo lleva un tipo declarado a su forma canónica (case-insensitive).
// Un tipo fuera del vocabulario se devuelve tal cual: el store lo acepta y los
// consumidores que hacen switch sobre el tipo caen al comportamiento por defecto.
func NormalizarTipoCampo(tipo string) string {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "text":
		return CampoTexto
	case "textarea":
		return CampoTextarea
	case "number":
		return CampoNumero
	case "email":
		return CampoEmail
	case "tel", "phone", "telefono":
		return CampoTelefono
	case "date":
		return CampoFecha
	case "checkbox", "boolean":
		return CampoCheckbox
	case "select", "dropdown", "radio":
		return CampoSelect
	case "url":
		return CampoURL
	case "address":
		return CampoDireccion
	default:
		return tipo
	}
}

// CampoEsquema describe un campo dinámico declarado por el esquema.
// Se serializa como JSONB dentro de la columna campos.
type CampoEsquema struct {
	Nombre    string   `json:"nombre"`
	Tipo      string   `json:"tipo"`
	Etiqueta  string   `json:"etiqueta,omitempty"`
	Opciones  []string `json:"opciones,omitempty"` // requeridas semánticamente para select
	Requerido bool     `json:"requerido,omitempty"`
}

// EsDireccion indica si el campo es de tipo address (dispara extracción de domicilios).
func (c CampoEsquema) EsDireccion() bool {
	return NormalizarTipoCampo(c.Tipo) == CampoDireccion
}

// EsquemaPersonalizado es la definición versionada de los campos variables de una
// combinación (empresa, tipo de entidad, subtipo). A lo sumo uno activo por triple.
type EsquemaPersonalizado struct {
	ID          string
	EmpresaID   *string // nil = esquema global (todas las empresas)
	EntidadTipo EntidadTipo
	SubTipo     string // "" aplica a todos los subtipos del tipo
	Nombre      string
	Descripcion string
	Icono       string
	Color       string
	Orden       int
	Activo      bool
	Version     int
	Campos      []CampoEsquema

	// Blobs opacos: este subsistema los guarda y devuelve sin interpretarlos.
	Validaciones    json.RawMessage
	Correlaciones   json.RawMessage
	ConfiguracionUI json.RawMessage

	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}

// CamposDireccion devuelve los campos de tipo address en el orden declarado.
func (e *EsquemaPersonalizado) CamposDireccion() []CampoEsquema {
	var out []CampoEsquema
	for _, c := range e.Campos {
		if c.EsDireccion() {
			out = append(out, c)
		}
	}
	return out
}
