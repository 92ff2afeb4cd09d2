package crm

import (
	"github.com/martinuzal/pharmind-api/internal/application/dinamica"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// validarEsquema resuelve y valida la referencia de esquema de una petición de
// fachada, acumulando motivos en valErr. Devuelve el esquema resuelto o nil.
// Un fallo del repositorio se propaga como error: no es un problema de la
// petición y no debe reportarse como referencia inexistente.
//
// Reglas: el esquema es obligatorio si hay datos dinámicos; debe existir, ser del
// tipo de entidad de la fachada y, cuando requiereActivo (alta de una entidad
// dinámica nueva), estar activo. Reemplazar el payload de una dinámica existente
// contra un esquema ya inactivo sí se permite: los registros históricos siguen
// siendo editables.
func validarEsquema(
	esqRepo repository.EsquemaRepository,
	esquemaID string,
	tipo entity.EntidadTipo,
	hayDatos bool,
	requiereActivo bool,
	valErr *domain.ValidationError,
) (*entity.EsquemaPersonalizado, error) {
	if esquemaID == "" {
		if hayDatos {
			valErr.Agregar("esquemaId", "requerido cuando se envían datos dinámicos")
		}
		return nil, nil
	}
	esquema, err := esqRepo.GetByID(esquemaID)
	if err != nil {
		return nil, err
	}
	if esquema == nil {
		valErr.Agregar("esquemaId", "no existe")
		return nil, nil
	}
	if esquema.EntidadTipo != tipo {
		valErr.Agregar("esquemaId", "no corresponde a "+string(tipo))
		return nil, nil
	}
	if requiereActivo && hayDatos && !esquema.Activo {
		valErr.Agregar("esquemaId", "inactivo")
		return nil, nil
	}
	return esquema, nil
}

// sincronizarDinamica corre la extracción de direcciones sobre datos y crea o
// reemplaza la entidad dinámica asociada, todo con repos de la transacción en
// curso. El orden es fijo: primero las direcciones quedan persistidas y
// sustituidas en el payload, después se persiste el payload. Devuelve el id de la
// entidad dinámica a colgar de la fila estática (el existente si ya había una).
//
// Al reemplazar, la entidad dinámica se re-liga al esquema recibido: la fila
// estática y su dinámica siempre apuntan al mismo esquema.
//
// datos vacío es no-op y conserva el id previo: un update sin porción dinámica no
// toca la entidad dinámica existente.
func sincronizarDinamica(
	dirRepo repository.DireccionRepository,
	dinRepo repository.EntidadDinamicaRepository,
	esquema *entity.EsquemaPersonalizado,
	dinamicaID *string,
	datos map[string]any,
	actor string,
) (*string, error) {
	if len(datos) == 0 {
		return dinamicaID, nil
	}
	if _, err := dinamica.ExtraerDirecciones(esquema, datos, dirRepo, actor); err != nil {
		return nil, err
	}
	if dinamicaID != nil {
		if _, err := dinamica.Actualizar(dinRepo, *dinamicaID, esquema, datos, actor); err != nil {
			return nil, err
		}
		return dinamicaID, nil
	}
	din, err := dinamica.Crear(dinRepo, esquema, datos, actor)
	if err != nil {
		return nil, err
	}
	return &din.ID, nil
}

// aplicar copia el valor apuntado sobre el destino solo si el puntero no es nil
// (semántica de parche de las peticiones de actualización).
func aplicar[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
