package entity

import "time"

// Empresa es el tenant: un laboratorio o distribuidora que usa el CRM.
type Empresa struct {
	ID       string
	Nombre   string
	NIT      string
	Pais     string
	CreadoEn time.Time
}
