package dto

import "time"

// CrearEmpresaRequest alta de empresa (tenant).
type CrearEmpresaRequest struct {
	Nombre string `json:"nombre"`
	NIT    string `json:"nit"`
	Pais   string `json:"pais"`
}

// EmpresaResponse representación de una empresa.
type EmpresaResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	NIT      string    `json:"nit,omitempty"`
	Pais     string    `json:"pais,omitempty"`
	CreadoEn time.Time `json:"creadoEn"`
}
