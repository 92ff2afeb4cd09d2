package dinamica

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
	"github.com/martinuzal/pharmind-api/internal/infrastructure/metrics"
	"github.com/martinuzal/pharmind-api/pkg/logger"
)

// Crear persiste una entidad dinámica nueva ligada a su esquema. El esquema debe
// existir y estar activo; las claves del payload no se contrastan contra los campos
// declarados (passthrough leniente).
func Crear(dinRepo repository.EntidadDinamicaRepository, esquema *entity.EsquemaPersonalizado, datos map[string]any, actor string) (*entity.EntidadDinamica, error) {
	if esquema == nil || !esquema.Activo {
		return nil, domain.ErrInvalidInput
	}
	raw, err := entity.CodificarDatos(datos)
	if err != nil {
		return nil, fmt.Errorf("codificar datos dinámicos: %w", err)
	}
	now := time.Now()
	din := &entity.EntidadDinamica{
		ID:            uuid.New().String(),
		EsquemaID:     esquema.ID,
		Datos:         raw,
		Activo:        true,
		CreadoPor:     actor,
		ModificadoPor: actor,
		CreadoEn:      now,
		ModificadoEn:  now,
	}
	if err := dinRepo.Create(din); err != nil {
		return nil, err
	}
	return din, nil
}

// Actualizar reemplaza por completo el payload de una entidad dinámica existente
// (sin merge) y bumpea la auditoría de modificación. Si viene esquema, la entidad
// se re-liga a él: su EsquemaID nunca queda apuntando a un esquema distinto del
// de la fila estática dueña.
func Actualizar(dinRepo repository.EntidadDinamicaRepository, id string, esquema *entity.EsquemaPersonalizado, datos map[string]any, actor string) (*entity.EntidadDinamica, error) {
	din, err := dinRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if din == nil {
		return nil, domain.ErrNotFound
	}
	raw, err := entity.CodificarDatos(datos)
	if err != nil {
		return nil, fmt.Errorf("codificar datos dinámicos: %w", err)
	}
	din.Datos = raw
	if esquema != nil {
		din.EsquemaID = esquema.ID
	}
	din.ModificadoPor = actor
	din.ModificadoEn = time.Now()
	if err := dinRepo.Update(din); err != nil {
		return nil, err
	}
	return din, nil
}

// Leer carga la entidad dinámica y decodifica su payload. Un blob corrupto se
// tolera: se loguea warn, se cuenta en métricas y se devuelve mapa vacío; la
// lectura del registro estático dueño nunca falla por esto.
func Leer(dinRepo repository.EntidadDinamicaRepository, id string, log *logger.Logger) (map[string]any, error) {
	din, err := dinRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if din == nil {
		return map[string]any{}, nil
	}
	datos, ok := din.DecodificarDatos()
	if !ok {
		metrics.DatosCorruptos.Inc()
		if log != nil {
			log.Warn().
				Str("entidad_dinamica_id", id).
				Str("esquema_id", din.EsquemaID).
				Msg("datos dinámicos ilegibles, se devuelve payload vacío")
		}
		return map[string]any{}, nil
	}
	return datos, nil
}
