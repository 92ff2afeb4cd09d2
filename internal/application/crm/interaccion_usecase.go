package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinuzal/pharmind-api/internal/application/dinamica"
	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
	"github.com/martinuzal/pharmind-api/pkg/logger"
)

// InteraccionUseCase fachada de interacciones (visitas, llamadas, congresos).
type InteraccionUseCase struct {
	txRunner        TxRunner
	esquemaRepo     repository.EsquemaRepository
	catalogoRepo    repository.CatalogoRepository
	clienteRepo     repository.ClienteRepository
	agenteRepo      repository.AgenteRepository
	relacionRepo    repository.RelacionRepository
	interaccionRepo repository.InteraccionRepository
	dinamicaRepo    repository.EntidadDinamicaRepository
	log             *logger.Logger
}

// NewInteraccionUseCase construye la fachada.
func NewInteraccionUseCase(
	txRunner TxRunner,
	esquemaRepo repository.EsquemaRepository,
	catalogoRepo repository.CatalogoRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
	relacionRepo repository.RelacionRepository,
	interaccionRepo repository.InteraccionRepository,
	dinamicaRepo repository.EntidadDinamicaRepository,
	log *logger.Logger,
) *InteraccionUseCase {
	return &InteraccionUseCase{
		txRunner:        txRunner,
		esquemaRepo:     esquemaRepo,
		catalogoRepo:    catalogoRepo,
		clienteRepo:     clienteRepo,
		agenteRepo:      agenteRepo,
		relacionRepo:    relacionRepo,
		interaccionRepo: interaccionRepo,
		dinamicaRepo:    dinamicaRepo,
		log:             log,
	}
}

// Crear registra una interacción. Valida relación, agente, cliente y producto
// referenciados (itemizado) y persiste todo en una transacción.
func (uc *InteraccionUseCase) Crear(ctx context.Context, empresaID, actor string, in dto.CrearInteraccionRequest) (*dto.InteraccionResponse, error) {
	valErr := &domain.ValidationError{}
	if in.RelacionID == "" {
		valErr.Agregar("relacionId", "requerido")
	} else if relacion, err := uc.relacionRepo.GetByID(in.RelacionID); err != nil {
		return nil, err
	} else if relacion == nil || relacion.EmpresaID != empresaID {
		valErr.Agregar("relacionId", "no existe")
	}
	if in.AgenteID == "" {
		valErr.Agregar("agenteId", "requerido")
	} else if agente, err := uc.agenteRepo.GetByID(in.AgenteID); err != nil {
		return nil, err
	} else if agente == nil || agente.EmpresaID != empresaID {
		valErr.Agregar("agenteId", "no existe")
	}
	if in.ClienteID == "" {
		valErr.Agregar("clienteId", "requerido")
	} else if cliente, err := uc.clienteRepo.GetByID(in.ClienteID); err != nil {
		return nil, err
	} else if cliente == nil || cliente.EmpresaID != empresaID {
		valErr.Agregar("clienteId", "no existe")
	}
	if in.ProductoID != nil && *in.ProductoID != "" {
		if producto, err := uc.catalogoRepo.GetProducto(*in.ProductoID); err != nil {
			return nil, err
		} else if producto == nil {
			valErr.Agregar("productoId", "no existe")
		}
	}
	esquema, err := validarEsquema(uc.esquemaRepo, in.EsquemaID, entity.EntidadInteraccion, len(in.DatosDinamicos) > 0, true, valErr)
	if err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	now := time.Now()
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = now
	}
	interaccion := &entity.Interaccion{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		RelacionID:      in.RelacionID,
		AgenteID:        in.AgenteID,
		ClienteID:       in.ClienteID,
		ProductoID:      in.ProductoID,
		Tipo:            in.Tipo,
		Notas:           in.Notas,
		Fecha:           fecha,
		DuracionMinutos: in.DuracionMinutos,
		SubTipo:         in.SubTipo,
		Activo:          true,
		CreadoPor:       actor,
		ModificadoPor:   actor,
		CreadoEn:        now,
		ModificadoEn:    now,
	}
	if esquema != nil {
		interaccion.EsquemaID = &esquema.ID
	}

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		interaccionRepo repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, nil, datos, actor)
		if err != nil {
			return err
		}
		interaccion.DinamicaID = dinID
		return interaccionRepo.Create(interaccion)
	})
	if err != nil {
		return nil, err
	}
	return toInteraccionResponse(interaccion, datos), nil
}

// Obtener devuelve la vista combinada de la interacción.
func (uc *InteraccionUseCase) Obtener(id string) (*dto.InteraccionResponse, error) {
	interaccion, err := uc.interaccionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if interaccion == nil {
		return nil, domain.ErrNotFound
	}
	datos := map[string]any{}
	if interaccion.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *interaccion.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toInteraccionResponse(interaccion, datos), nil
}

// ListarPorRelacion pagina las interacciones de una relación.
func (uc *InteraccionUseCase) ListarPorRelacion(relacionID string, limit, offset int) ([]*dto.InteraccionResponse, error) {
	lista, err := uc.interaccionRepo.ListByRelacion(relacionID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InteraccionResponse, 0, len(lista))
	for _, i := range lista {
		out = append(out, toInteraccionResponse(i, nil))
	}
	return out, nil
}

// Actualizar parche estático + reemplazo del payload dinámico.
func (uc *InteraccionUseCase) Actualizar(ctx context.Context, id, actor string, in dto.ActualizarInteraccionRequest) (*dto.InteraccionResponse, error) {
	interaccion, err := uc.interaccionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if interaccion == nil {
		return nil, domain.ErrNotFound
	}

	valErr := &domain.ValidationError{}
	if in.ProductoID != nil && *in.ProductoID != "" {
		if producto, err := uc.catalogoRepo.GetProducto(*in.ProductoID); err != nil {
			return nil, err
		} else if producto == nil {
			valErr.Agregar("productoId", "no existe")
		}
	}
	esquemaID := ""
	if in.EsquemaID != nil {
		esquemaID = *in.EsquemaID
	} else if interaccion.EsquemaID != nil {
		esquemaID = *interaccion.EsquemaID
	}
	esquema, err := validarEsquema(uc.esquemaRepo, esquemaID, entity.EntidadInteraccion,
		len(in.DatosDinamicos) > 0, interaccion.DinamicaID == nil, valErr)
	if err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	if in.ProductoID != nil {
		interaccion.ProductoID = in.ProductoID
	}
	aplicar(&interaccion.Tipo, in.Tipo)
	aplicar(&interaccion.Notas, in.Notas)
	if in.Fecha != nil {
		interaccion.Fecha = *in.Fecha
	}
	if in.DuracionMinutos != nil {
		interaccion.DuracionMinutos = *in.DuracionMinutos
	}
	if esquema != nil {
		interaccion.EsquemaID = &esquema.ID
	}
	interaccion.ModificadoPor = actor
	interaccion.ModificadoEn = time.Now()

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		interaccionRepo repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, interaccion.DinamicaID, datos, actor)
		if err != nil {
			return err
		}
		interaccion.DinamicaID = dinID
		return interaccionRepo.Update(interaccion)
	})
	if err != nil {
		return nil, err
	}

	if len(datos) == 0 && interaccion.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *interaccion.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toInteraccionResponse(interaccion, datos), nil
}

// Eliminar soft-borra la interacción y su entidad dinámica.
func (uc *InteraccionUseCase) Eliminar(ctx context.Context, id, actor string) error {
	interaccion, err := uc.interaccionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if interaccion == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCRM(ctx, func(
		_ repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		interaccionRepo repository.InteraccionRepository,
	) error {
		if err := interaccionRepo.Desactivar(id, actor); err != nil {
			return err
		}
		if interaccion.DinamicaID != nil {
			return dinRepo.Desactivar(*interaccion.DinamicaID, actor)
		}
		return nil
	})
}

func toInteraccionResponse(i *entity.Interaccion, datos map[string]any) *dto.InteraccionResponse {
	return &dto.InteraccionResponse{
		ID:              i.ID,
		EmpresaID:       i.EmpresaID,
		RelacionID:      i.RelacionID,
		AgenteID:        i.AgenteID,
		AgenteNombre:    i.AgenteNombre,
		ClienteID:       i.ClienteID,
		ClienteNombre:   i.ClienteNombre,
		ProductoID:      i.ProductoID,
		ProductoNombre:  i.ProductoNombre,
		Tipo:            i.Tipo,
		Notas:           i.Notas,
		Fecha:           i.Fecha,
		DuracionMinutos: i.DuracionMinutos,
		SubTipo:         i.SubTipo,
		EsquemaID:       i.EsquemaID,
		DatosDinamicos:  datos,
		CreadoEn:        i.CreadoEn,
		ModificadoEn:    i.ModificadoEn,
	}
}
