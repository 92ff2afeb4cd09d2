package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direccion es un domicilio normalizado extraído de un payload dinámico.
// Las filas son inmutables: cada extracción crea una dirección nueva; nunca se
// actualizan ni se borran desde este subsistema.
type Direccion struct {
	ID           string
	Calle        *string
	Numero       *string
	Apartamento  *string
	Colonia      *string
	Ciudad       *string
	Estado       *string
	CodigoPostal *string
	Pais         *string
	Referencia   *string
	Latitud      *decimal.Decimal // nil si la coordenada no vino o no parseó
	Longitud     *decimal.Decimal

	CreadoPor string
	CreadoEn  time.Time
}
