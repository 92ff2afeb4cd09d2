// Package dinamica implementa la porción variable de los registros CRM: el store
// de entidades dinámicas (payloads JSON gobernados por un esquema) y la extracción
// de domicilios embebidos hacia filas de dirección normalizadas.
package dinamica

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
	"github.com/martinuzal/pharmind-api/internal/infrastructure/metrics"
)

// ExtraerDirecciones recorre los campos de tipo address del esquema y, por cada uno
// cuyo valor en datos sea un objeto, crea una Direccion normalizada y sustituye el
// objeto in place por el id de la dirección (string).
//
// Un valor ausente o que ya no es objeto (típicamente el id de una extracción
// anterior) se salta: la operación es idempotente sobre payloads ya procesados.
// Devuelve cuántas sustituciones se hicieron; el llamador debe persistir el payload
// mutado solo si hubo alguna. Debe invocarse dentro de la misma transacción que
// persiste la entidad dinámica y la fila estática.
func ExtraerDirecciones(esquema *entity.EsquemaPersonalizado, datos map[string]any, dirRepo repository.DireccionRepository, actor string) (int, error) {
	if esquema == nil || len(datos) == 0 {
		return 0, nil
	}
	extraidas := 0
	for _, campo := range esquema.CamposDireccion() {
		valor, ok := datos[campo.Nombre]
		if !ok {
			continue
		}
		obj, ok := valor.(map[string]any)
		if !ok {
			continue
		}
		dir := construirDireccion(obj, actor)
		if err := dirRepo.Create(dir); err != nil {
			return extraidas, fmt.Errorf("persistir dirección de %q: %w", campo.Nombre, err)
		}
		datos[campo.Nombre] = dir.ID
		extraidas++
		metrics.DireccionesExtraidas.Inc()
	}
	return extraidas, nil
}

// construirDireccion mapea las sub-claves del objeto a las columnas normalizadas.
// Sub-clave ausente = columna null; no hay defaulting.
func construirDireccion(obj map[string]any, actor string) *entity.Direccion {
	return &entity.Direccion{
		ID:           uuid.New().String(),
		Calle:        subClave(obj, "calle"),
		Numero:       subClave(obj, "numero"),
		Apartamento:  subClave(obj, "apartamento"),
		Colonia:      subClave(obj, "colonia"),
		Ciudad:       subClave(obj, "ciudad"),
		Estado:       subClave(obj, "estado"),
		CodigoPostal: subClave(obj, "codigoPostal"),
		Pais:         subClave(obj, "pais"),
		Referencia:   subClave(obj, "referencia"),
		Latitud:      coordenada(obj["latitud"]),
		Longitud:     coordenada(obj["longitud"]),
		CreadoPor:    actor,
		CreadoEn:     time.Now(),
	}
}

func subClave(obj map[string]any, clave string) *string {
	v, ok := obj[clave]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// coordenada parsea latitud/longitud de forma leniente: acepta string decimal o
// número JSON; cualquier otra cosa (o un string no parseable) se descarta sin log
// ni error para no bloquear el resto del registro.
func coordenada(v any) *decimal.Decimal {
	switch n := v.(type) {
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return nil
		}
		return &d
	case float64:
		d := decimal.NewFromFloat(n)
		return &d
	default:
		return nil
	}
}
