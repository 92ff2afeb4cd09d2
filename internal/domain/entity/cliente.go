package entity

import "time"

// Cliente representa un profesional de la salud o institución visitada (médico,
// farmacia, hospital). La porción variable vive en la EntidadDinamica referenciada.
type Cliente struct {
	ID          string
	EmpresaID   string
	Nombre      string
	Apellido    string
	Email       string
	Telefono    string
	Institucion string
	RegionID    *string
	DistritoID  *string
	SubTipo     string // ej. "Médico", "Farmacia"
	EsquemaID   *string
	DinamicaID  *string

	// Nombres expandidos en lectura (join); no se persisten en la fila.
	RegionNombre   string
	DistritoNombre string

	Activo        bool
	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}
