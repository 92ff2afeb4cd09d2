package entity

import "time"

// Relacion vincula a un agente con su cliente principal (y hasta dos secundarios,
// ej. médico que deriva a dos farmacias). Es la unidad sobre la que se registran
// interacciones.
type Relacion struct {
	ID                   string
	EmpresaID            string
	ClientePrincipalID   string
	ClienteSecundario1ID *string
	ClienteSecundario2ID *string
	AgenteID             string
	Tipo                 string // ej. "cartera", "prospecto"
	Estado               string // ej. "activa", "pausada"
	FechaInicio          time.Time
	SubTipo              string
	EsquemaID            *string
	DinamicaID           *string

	ClientePrincipalNombre string
	AgenteNombre           string

	Activo        bool
	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}
