package entity

import "time"

// Interaccion registra una visita o contacto dentro de una relación agente-cliente.
// ProductoID referencia la muestra o producto promocionado en la visita, si hubo.
type Interaccion struct {
	ID              string
	EmpresaID       string
	RelacionID      string
	AgenteID        string
	ClienteID       string
	ProductoID      *string
	Tipo            string // ej. "visita", "llamada", "congreso"
	Notas           string
	Fecha           time.Time
	DuracionMinutos int
	SubTipo         string
	EsquemaID       *string
	DinamicaID      *string

	AgenteNombre   string
	ClienteNombre  string
	ProductoNombre string

	Activo        bool
	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}
