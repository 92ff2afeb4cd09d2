package dto

import "time"

// ──────────────────────────────────────────────────────────────────────────────
// Cliente
// ──────────────────────────────────────────────────────────────────────────────

// CrearClienteRequest alta de cliente con su porción dinámica opcional.
type CrearClienteRequest struct {
	Nombre         string         `json:"nombre"`
	Apellido       string         `json:"apellido"`
	Email          string         `json:"email"`
	Telefono       string         `json:"telefono"`
	Institucion    string         `json:"institucion"`
	RegionID       *string        `json:"regionId"`
	DistritoID     *string        `json:"distritoId"`
	SubTipo        string         `json:"subTipo"`
	EsquemaID      string         `json:"esquemaId"`
	DatosDinamicos map[string]any `json:"datosDinamicos"`
}

// ActualizarClienteRequest parche de cliente: solo campos no-nil se aplican.
// DatosDinamicos no vacío reemplaza el payload dinámico completo.
type ActualizarClienteRequest struct {
	Nombre         *string        `json:"nombre"`
	Apellido       *string        `json:"apellido"`
	Email          *string        `json:"email"`
	Telefono       *string        `json:"telefono"`
	Institucion    *string        `json:"institucion"`
	RegionID       *string        `json:"regionId"`
	DistritoID     *string        `json:"distritoId"`
	EsquemaID      *string        `json:"esquemaId"`
	DatosDinamicos map[string]any `json:"datosDinamicos"`
}

// ClienteResponse vista combinada: columnas estáticas + payload dinámico.
type ClienteResponse struct {
	ID             string         `json:"id"`
	EmpresaID      string         `json:"empresaId"`
	Nombre         string         `json:"nombre"`
	Apellido       string         `json:"apellido,omitempty"`
	Email          string         `json:"email,omitempty"`
	Telefono       string         `json:"telefono,omitempty"`
	Institucion    string         `json:"institucion,omitempty"`
	RegionID       *string        `json:"regionId,omitempty"`
	RegionNombre   string         `json:"regionNombre,omitempty"`
	DistritoID     *string        `json:"distritoId,omitempty"`
	DistritoNombre string         `json:"distritoNombre,omitempty"`
	SubTipo        string         `json:"subTipo,omitempty"`
	EsquemaID      *string        `json:"esquemaId,omitempty"`
	DatosDinamicos map[string]any `json:"datosDinamicos,omitempty"`
	CreadoEn       time.Time      `json:"creadoEn"`
	ModificadoEn   time.Time      `json:"modificadoEn"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Agente
// ──────────────────────────────────────────────────────────────────────────────

type CrearAgenteRequest struct {
	Nombre         string         `json:"nombre"`
	Apellido       string         `json:"apellido"`
	Email          string         `json:"email"`
	Telefono       string         `json:"telefono"`
	ManagerID      *string        `json:"managerId"`
	RegionID       *string        `json:"regionId"`
	SubTipo        string         `json:"subTipo"`
	EsquemaID      string         `json:"esquemaId"`
	DatosDinamicos map[string]any `json:"datosDinamicos"`
}

type ActualizarAgenteRequest struct {
	Nombre         *string        `json:"nombre"`
	Apellido       *string        `json:"apellido"`
	Email          *string        `json:"email"`
	Telefono       *string        `json:"telefono"`
	ManagerID      *string        `json:"managerId"`
	RegionID       *string        `json:"regionId"`
	EsquemaID      *string        `json:"esquemaId"`
	DatosDinamicos map[string]any `json:"datosDinamicos"`
}

type AgenteResponse struct {
	ID             string         `json:"id"`
	EmpresaID      string         `json:"empresaId"`
	Nombre         string         `json:"nombre"`
	Apellido       string         `json:"apellido,omitempty"`
	Email          string         `json:"email,omitempty"`
	Telefono       string         `json:"telefono,omitempty"`
	ManagerID      *string        `json:"managerId,omitempty"`
	ManagerNombre  string         `json:"managerNombre,omitempty"`
	RegionID       *string        `json:"regionId,omitempty"`
	RegionNombre   string         `json:"regionNombre,omitempty"`
	SubTipo        string         `json:"subTipo,omitempty"`
	EsquemaID      *string        `json:"esquemaId,omitempty"`
	DatosDinamicos map[string]any `json:"datosDinamicos,omitempty"`
	CreadoEn       time.Time      `json:"creadoEn"`
	ModificadoEn   time.Time      `json:"modificadoEn"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relacion
// ──────────────────────────────────────────────────────────────────────────────

type CrearRelacionRequest struct {
	ClientePrincipalID   string         `json:"clientePrincipalId"`
	ClienteSecundario1ID *string        `json:"clienteSecundario1Id"`
	ClienteSecundario2ID *string        `json:"clienteSecundario2Id"`
	AgenteID             string         `json:"agenteId"`
	Tipo                 string         `json:"tipo"`
	Estado               string         `json:"estado"`
	FechaInicio          time.Time      `json:"fechaInicio"`
	SubTipo              string         `json:"subTipo"`
	EsquemaID            string         `json:"esquemaId"`
	DatosDinamicos       map[string]any `json:"datosDinamicos"`
}

type ActualizarRelacionRequest struct {
	ClienteSecundario1ID *string        `json:"clienteSecundario1Id"`
	ClienteSecundario2ID *string        `json:"clienteSecundario2Id"`
	Tipo                 *string        `json:"tipo"`
	Estado               *string        `json:"estado"`
	EsquemaID            *string        `json:"esquemaId"`
	DatosDinamicos       map[string]any `json:"datosDinamicos"`
}

type RelacionResponse struct {
	ID                     string         `json:"id"`
	EmpresaID              string         `json:"empresaId"`
	ClientePrincipalID     string         `json:"clientePrincipalId"`
	ClientePrincipalNombre string         `json:"clientePrincipalNombre,omitempty"`
	ClienteSecundario1ID   *string        `json:"clienteSecundario1Id,omitempty"`
	ClienteSecundario2ID   *string        `json:"clienteSecundario2Id,omitempty"`
	AgenteID               string         `json:"agenteId"`
	AgenteNombre           string         `json:"agenteNombre,omitempty"`
	Tipo                   string         `json:"tipo,omitempty"`
	Estado                 string         `json:"estado,omitempty"`
	FechaInicio            time.Time      `json:"fechaInicio"`
	SubTipo                string         `json:"subTipo,omitempty"`
	EsquemaID              *string        `json:"esquemaId,omitempty"`
	DatosDinamicos         map[string]any `json:"datosDinamicos,omitempty"`
	CreadoEn               time.Time      `json:"creadoEn"`
	ModificadoEn           time.Time      `json:"modificadoEn"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Interaccion
// ──────────────────────────────────────────────────────────────────────────────

type CrearInteraccionRequest struct {
	RelacionID      string         `json:"relacionId"`
	AgenteID        string         `json:"agenteId"`
	ClienteID       string         `json:"clienteId"`
	ProductoID      *string        `json:"productoId"`
	Tipo            string         `json:"tipo"`
	Notas           string         `json:"notas"`
	Fecha           time.Time      `json:"fecha"`
	DuracionMinutos int            `json:"duracionMinutos"`
	SubTipo         string         `json:"subTipo"`
	EsquemaID       string         `json:"esquemaId"`
	DatosDinamicos  map[string]any `json:"datosDinamicos"`
}

type ActualizarInteraccionRequest struct {
	ProductoID      *string        `json:"productoId"`
	Tipo            *string        `json:"tipo"`
	Notas           *string        `json:"notas"`
	Fecha           *time.Time     `json:"fecha"`
	DuracionMinutos *int           `json:"duracionMinutos"`
	EsquemaID       *string        `json:"esquemaId"`
	DatosDinamicos  map[string]any `json:"datosDinamicos"`
}

type InteraccionResponse struct {
	ID              string         `json:"id"`
	EmpresaID       string         `json:"empresaId"`
	RelacionID      string         `json:"relacionId"`
	AgenteID        string         `json:"agenteId"`
	AgenteNombre    string         `json:"agenteNombre,omitempty"`
	ClienteID       string         `json:"clienteId"`
	ClienteNombre   string         `json:"clienteNombre,omitempty"`
	ProductoID      *string        `json:"productoId,omitempty"`
	ProductoNombre  string         `json:"productoNombre,omitempty"`
	Tipo            string         `json:"tipo,omitempty"`
	Notas           string         `json:"notas,omitempty"`
	Fecha           time.Time      `json:"fecha"`
	DuracionMinutos int            `json:"duracionMinutos,omitempty"`
	SubTipo         string         `json:"subTipo,omitempty"`
	EsquemaID       *string        `json:"esquemaId,omitempty"`
	DatosDinamicos  map[string]any `json:"datosDinamicos,omitempty"`
	CreadoEn        time.Time      `json:"creadoEn"`
	ModificadoEn    time.Time      `json:"modificadoEn"`
}
