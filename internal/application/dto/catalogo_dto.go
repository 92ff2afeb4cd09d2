package dto

import "time"

// CrearRegionRequest alta de región.
type CrearRegionRequest struct {
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}

// RegionResponse representación de una región.
type RegionResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresaId"`
	Nombre    string    `json:"nombre"`
	Codigo    string    `json:"codigo,omitempty"`
	CreadoEn  time.Time `json:"creadoEn"`
}

// CrearDistritoRequest alta de distrito dentro de una región.
type CrearDistritoRequest struct {
	RegionID string `json:"regionId"`
	Nombre   string `json:"nombre"`
	Codigo   string `json:"codigo"`
}

// DistritoResponse representación de un distrito.
type DistritoResponse struct {
	ID       string    `json:"id"`
	RegionID string    `json:"regionId"`
	Nombre   string    `json:"nombre"`
	Codigo   string    `json:"codigo,omitempty"`
	CreadoEn time.Time `json:"creadoEn"`
}

// CrearManagerRequest alta de manager.
type CrearManagerRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// ManagerResponse representación de un manager.
type ManagerResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresaId"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email,omitempty"`
	CreadoEn  time.Time `json:"creadoEn"`
}

// CrearProductoRequest alta de producto del portafolio.
type CrearProductoRequest struct {
	Nombre      string `json:"nombre"`
	CodigoATC   string `json:"codigoAtc"`
	Descripcion string `json:"descripcion"`
}

// ProductoResponse representación de un producto.
type ProductoResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresaId"`
	Nombre      string    `json:"nombre"`
	CodigoATC   string    `json:"codigoAtc,omitempty"`
	Descripcion string    `json:"descripcion,omitempty"`
	CreadoEn    time.Time `json:"creadoEn"`
}
