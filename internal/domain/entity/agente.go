package entity

import "time"

// Agente representa un representante de campo (visitador médico).
type Agente struct {
	ID         string
	EmpresaID  string
	Nombre     string
	Apellido   string
	Email      string
	Telefono   string
	ManagerID  *string
	RegionID   *string
	SubTipo    string
	EsquemaID  *string
	DinamicaID *string

	ManagerNombre string
	RegionNombre  string

	Activo        bool
	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}
