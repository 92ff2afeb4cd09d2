package entity

import "time"

// Region zona geográfica de cobertura de una empresa.
type Region struct {
	ID        string
	EmpresaID string
	Nombre    string
	Codigo    string
	CreadoEn  time.Time
}

// Distrito subdivisión de una región (territorio de visita).
type Distrito struct {
	ID       string
	RegionID string
	Nombre   string
	Codigo   string
	CreadoEn time.Time
}

// Manager gerente de distrito o de línea al que reportan agentes.
type Manager struct {
	ID        string
	EmpresaID string
	Nombre    string
	Email     string
	CreadoEn  time.Time
}

// Producto ítem del portafolio promocional (muestras, material).
type Producto struct {
	ID          string
	EmpresaID   string
	Nombre      string
	CodigoATC   string // clasificación anatómica-terapéutica-química
	Descripcion string
	CreadoEn    time.Time
}
