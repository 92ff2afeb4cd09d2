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

// RelacionUseCase fachada de relaciones agente-cliente.
type RelacionUseCase struct {
	txRunner     TxRunner
	esquemaRepo  repository.EsquemaRepository
	clienteRepo  repository.ClienteRepository
	agenteRepo   repository.AgenteRepository
	relacionRepo repository.RelacionRepository
	dinamicaRepo repository.EntidadDinamicaRepository
	log          *logger.Logger
}

// NewRelacionUseCase construye la fachada.
func NewRelacionUseCase(
	txRunner TxRunner,
	esquemaRepo repository.EsquemaRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
	relacionRepo repository.RelacionRepository,
	dinamicaRepo repository.EntidadDinamicaRepository,
	log *logger.Logger,
) *RelacionUseCase {
	return &RelacionUseCase{
		txRunner:     txRunner,
		esquemaRepo:  esquemaRepo,
		clienteRepo:  clienteRepo,
		agenteRepo:   agenteRepo,
		relacionRepo: relacionRepo,
		dinamicaRepo: dinamicaRepo,
		log:          log,
	}
}

// Crear valida agente, cliente principal y secundarios (itemizado), y persiste la
// relación junto con su porción dinámica en una transacción.
func (uc *RelacionUseCase) Crear(ctx context.Context, empresaID, actor string, in dto.CrearRelacionRequest) (*dto.RelacionResponse, error) {
	valErr := &domain.ValidationError{}
	if err := uc.validarCliente("clientePrincipalId", in.ClientePrincipalID, empresaID, true, valErr); err != nil {
		return nil, err
	}
	if in.ClienteSecundario1ID != nil {
		if err := uc.validarCliente("clienteSecundario1Id", *in.ClienteSecundario1ID, empresaID, false, valErr); err != nil {
			return nil, err
		}
	}
	if in.ClienteSecundario2ID != nil {
		if err := uc.validarCliente("clienteSecundario2Id", *in.ClienteSecundario2ID, empresaID, false, valErr); err != nil {
			return nil, err
		}
	}
	if in.AgenteID == "" {
		valErr.Agregar("agenteId", "requerido")
	} else if agente, err := uc.agenteRepo.GetByID(in.AgenteID); err != nil {
		return nil, err
	} else if agente == nil || agente.EmpresaID != empresaID {
		valErr.Agregar("agenteId", "no existe")
	}
	esquema, err := validarEsquema(uc.esquemaRepo, in.EsquemaID, entity.EntidadRelacion, len(in.DatosDinamicos) > 0, true, valErr)
	if err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	now := time.Now()
	fechaInicio := in.FechaInicio
	if fechaInicio.IsZero() {
		fechaInicio = now
	}
	relacion := &entity.Relacion{
		ID:                   uuid.New().String(),
		EmpresaID:            empresaID,
		ClientePrincipalID:   in.ClientePrincipalID,
		ClienteSecundario1ID: in.ClienteSecundario1ID,
		ClienteSecundario2ID: in.ClienteSecundario2ID,
		AgenteID:             in.AgenteID,
		Tipo:                 in.Tipo,
		Estado:               in.Estado,
		FechaInicio:          fechaInicio,
		SubTipo:              in.SubTipo,
		Activo:               true,
		CreadoPor:            actor,
		ModificadoPor:        actor,
		CreadoEn:             now,
		ModificadoEn:         now,
	}
	if esquema != nil {
		relacion.EsquemaID = &esquema.ID
	}

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		relacionRepo repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, nil, datos, actor)
		if err != nil {
			return err
		}
		relacion.DinamicaID = dinID
		return relacionRepo.Create(relacion)
	})
	if err != nil {
		return nil, err
	}
	return toRelacionResponse(relacion, datos), nil
}

// Obtener devuelve la vista combinada de la relación.
func (uc *RelacionUseCase) Obtener(id string) (*dto.RelacionResponse, error) {
	relacion, err := uc.relacionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if relacion == nil {
		return nil, domain.ErrNotFound
	}
	datos := map[string]any{}
	if relacion.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *relacion.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toRelacionResponse(relacion, datos), nil
}

// Listar pagina relaciones de la empresa, opcionalmente filtradas por agente.
func (uc *RelacionUseCase) Listar(empresaID, agenteID string, limit, offset int) ([]*dto.RelacionResponse, error) {
	lista, err := uc.relacionRepo.ListByEmpresa(empresaID, agenteID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RelacionResponse, 0, len(lista))
	for _, r := range lista {
		out = append(out, toRelacionResponse(r, nil))
	}
	return out, nil
}

// Actualizar parche estático + reemplazo del payload dinámico.
func (uc *RelacionUseCase) Actualizar(ctx context.Context, id, actor string, in dto.ActualizarRelacionRequest) (*dto.RelacionResponse, error) {
	relacion, err := uc.relacionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if relacion == nil {
		return nil, domain.ErrNotFound
	}

	valErr := &domain.ValidationError{}
	if in.ClienteSecundario1ID != nil && *in.ClienteSecundario1ID != "" {
		if err := uc.validarCliente("clienteSecundario1Id", *in.ClienteSecundario1ID, relacion.EmpresaID, false, valErr); err != nil {
			return nil, err
		}
	}
	if in.ClienteSecundario2ID != nil && *in.ClienteSecundario2ID != "" {
		if err := uc.validarCliente("clienteSecundario2Id", *in.ClienteSecundario2ID, relacion.EmpresaID, false, valErr); err != nil {
			return nil, err
		}
	}
	esquemaID := ""
	if in.EsquemaID != nil {
		esquemaID = *in.EsquemaID
	} else if relacion.EsquemaID != nil {
		esquemaID = *relacion.EsquemaID
	}
	esquema, err := validarEsquema(uc.esquemaRepo, esquemaID, entity.EntidadRelacion,
		len(in.DatosDinamicos) > 0, relacion.DinamicaID == nil, valErr)
	if err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	if in.ClienteSecundario1ID != nil {
		relacion.ClienteSecundario1ID = in.ClienteSecundario1ID
	}
	if in.ClienteSecundario2ID != nil {
		relacion.ClienteSecundario2ID = in.ClienteSecundario2ID
	}
	aplicar(&relacion.Tipo, in.Tipo)
	aplicar(&relacion.Estado, in.Estado)
	if esquema != nil {
		relacion.EsquemaID = &esquema.ID
	}
	relacion.ModificadoPor = actor
	relacion.ModificadoEn = time.Now()

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		relacionRepo repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, relacion.DinamicaID, datos, actor)
		if err != nil {
			return err
		}
		relacion.DinamicaID = dinID
		return relacionRepo.Update(relacion)
	})
	if err != nil {
		return nil, err
	}

	if len(datos) == 0 && relacion.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *relacion.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toRelacionResponse(relacion, datos), nil
}

// Eliminar soft-borra la relación y su entidad dinámica.
func (uc *RelacionUseCase) Eliminar(ctx context.Context, id, actor string) error {
	relacion, err := uc.relacionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if relacion == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCRM(ctx, func(
		_ repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		_ repository.AgenteRepository,
		relacionRepo repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		if err := relacionRepo.Desactivar(id, actor); err != nil {
			return err
		}
		if relacion.DinamicaID != nil {
			return dinRepo.Desactivar(*relacion.DinamicaID, actor)
		}
		return nil
	})
}

// validarCliente acumula la referencia en valErr si el cliente no existe o es de
// otra empresa; un fallo del repositorio se devuelve como error.
func (uc *RelacionUseCase) validarCliente(campo, id, empresaID string, requerido bool, valErr *domain.ValidationError) error {
	if id == "" {
		if requerido {
			valErr.Agregar(campo, "requerido")
		}
		return nil
	}
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil || cliente.EmpresaID != empresaID {
		valErr.Agregar(campo, "no existe")
	}
	return nil
}

func toRelacionResponse(r *entity.Relacion, datos map[string]any) *dto.RelacionResponse {
	return &dto.RelacionResponse{
		ID:                     r.ID,
		EmpresaID:              r.EmpresaID,
		ClientePrincipalID:     r.ClientePrincipalID,
		ClientePrincipalNombre: r.ClientePrincipalNombre,
		ClienteSecundario1ID:   r.ClienteSecundario1ID,
		ClienteSecundario2ID:   r.ClienteSecundario2ID,
		AgenteID:               r.AgenteID,
		AgenteNombre:           r.AgenteNombre,
		Tipo:                   r.Tipo,
		Estado:                 r.Estado,
		FechaInicio:            r.FechaInicio,
		SubTipo:                r.SubTipo,
		EsquemaID:              r.EsquemaID,
		DatosDinamicos:         datos,
		CreadoEn:               r.CreadoEn,
		ModificadoEn:           r.ModificadoEn,
	}
}
