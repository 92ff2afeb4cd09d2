package entity

import (
	"encoding/json"
	"time"
)

// EntidadDinamica guarda la porción variable de un registro (Cliente, Agente,
// Relacion o Interaccion) como un blob JSON ligado a su esquema.
type EntidadDinamica struct {
	ID        string
	EsquemaID string
	Datos     json.RawMessage // objeto JSON; claves = subconjunto de campos del esquema
	Estado    string
	Etiquetas []string

	Activo        bool
	CreadoPor     string
	ModificadoPor string
	CreadoEn      time.Time
	ModificadoEn  time.Time
}

// DecodificarDatos intenta decodificar Datos como objeto JSON. Un blob corrupto o
// vacío devuelve (nil, false); el llamador trata ese caso como "sin datos dinámicos"
// y nunca como fallo de la petición.
func (e *EntidadDinamica) DecodificarDatos() (map[string]any, bool) {
	if len(e.Datos) == 0 {
		return nil, false
	}
	var datos map[string]any
	if err := json.Unmarshal(e.Datos, &datos); err != nil {
		return nil, false
	}
	return datos, true
}

// CodificarDatos serializa el mapa de datos para persistirlo. Un mapa nil se guarda
// como objeto vacío para que la columna siempre contenga JSON válido.
func CodificarDatos(datos map[string]any) (json.RawMessage, error) {
	if datos == nil {
		return json.RawMessage("{}"), nil
	}
	raw, err := json.Marshal(datos)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
