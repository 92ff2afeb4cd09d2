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
	"github.com/martinuzal/pharmind-api/pkg/busqueda"
	"github.com/martinuzal/pharmind-api/pkg/logger"
)

// AgenteUseCase fachada de agentes (representantes de campo).
type AgenteUseCase struct {
	txRunner     TxRunner
	esquemaRepo  repository.EsquemaRepository
	catalogoRepo repository.CatalogoRepository
	agenteRepo   repository.AgenteRepository
	dinamicaRepo repository.EntidadDinamicaRepository
	log          *logger.Logger
}

// NewAgenteUseCase construye la fachada.
func NewAgenteUseCase(
	txRunner TxRunner,
	esquemaRepo repository.EsquemaRepository,
	catalogoRepo repository.CatalogoRepository,
	agenteRepo repository.AgenteRepository,
	dinamicaRepo repository.EntidadDinamicaRepository,
	log *logger.Logger,
) *AgenteUseCase {
	return &AgenteUseCase{
		txRunner:     txRunner,
		esquemaRepo:  esquemaRepo,
		catalogoRepo: catalogoRepo,
		agenteRepo:   agenteRepo,
		dinamicaRepo: dinamicaRepo,
		log:          log,
	}
}

// Crear da de alta un agente con su porción dinámica opcional.
func (uc *AgenteUseCase) Crear(ctx context.Context, empresaID, actor string, in dto.CrearAgenteRequest) (*dto.AgenteResponse, error) {
	valErr := &domain.ValidationError{}
	if in.Nombre == "" {
		valErr.Agregar("nombre", "requerido")
	}
	esquema, err := validarEsquema(uc.esquemaRepo, in.EsquemaID, entity.EntidadAgente, len(in.DatosDinamicos) > 0, true, valErr)
	if err != nil {
		return nil, err
	}
	if err := uc.validarCatalogos(in.ManagerID, in.RegionID, valErr); err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	now := time.Now()
	agente := &entity.Agente{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Email:         in.Email,
		Telefono:      in.Telefono,
		ManagerID:     in.ManagerID,
		RegionID:      in.RegionID,
		SubTipo:       in.SubTipo,
		Activo:        true,
		CreadoPor:     actor,
		ModificadoPor: actor,
		CreadoEn:      now,
		ModificadoEn:  now,
	}
	if esquema != nil {
		agente.EsquemaID = &esquema.ID
	}

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		agenteRepo repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, nil, datos, actor)
		if err != nil {
			return err
		}
		agente.DinamicaID = dinID
		return agenteRepo.Create(agente)
	})
	if err != nil {
		return nil, err
	}
	return toAgenteResponse(agente, datos), nil
}

// Obtener devuelve la vista combinada del agente.
func (uc *AgenteUseCase) Obtener(id string) (*dto.AgenteResponse, error) {
	agente, err := uc.agenteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agente == nil {
		return nil, domain.ErrNotFound
	}
	datos := map[string]any{}
	if agente.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *agente.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toAgenteResponse(agente, datos), nil
}

// Listar pagina agentes activos; búsqueda normalizada por nombre.
func (uc *AgenteUseCase) Listar(empresaID, terminoBusqueda string, limit, offset int) ([]*dto.AgenteResponse, error) {
	lista, err := uc.agenteRepo.ListByEmpresa(empresaID, busqueda.Normalizar(terminoBusqueda), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AgenteResponse, 0, len(lista))
	for _, a := range lista {
		out = append(out, toAgenteResponse(a, nil))
	}
	return out, nil
}

// Actualizar parche estático + reemplazo total del payload dinámico si viene.
func (uc *AgenteUseCase) Actualizar(ctx context.Context, id, actor string, in dto.ActualizarAgenteRequest) (*dto.AgenteResponse, error) {
	agente, err := uc.agenteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agente == nil {
		return nil, domain.ErrNotFound
	}

	valErr := &domain.ValidationError{}
	esquemaID := ""
	if in.EsquemaID != nil {
		esquemaID = *in.EsquemaID
	} else if agente.EsquemaID != nil {
		esquemaID = *agente.EsquemaID
	}
	esquema, err := validarEsquema(uc.esquemaRepo, esquemaID, entity.EntidadAgente,
		len(in.DatosDinamicos) > 0, agente.DinamicaID == nil, valErr)
	if err != nil {
		return nil, err
	}
	if err := uc.validarCatalogos(in.ManagerID, in.RegionID, valErr); err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	aplicar(&agente.Nombre, in.Nombre)
	aplicar(&agente.Apellido, in.Apellido)
	aplicar(&agente.Email, in.Email)
	aplicar(&agente.Telefono, in.Telefono)
	if in.ManagerID != nil {
		agente.ManagerID = in.ManagerID
	}
	if in.RegionID != nil {
		agente.RegionID = in.RegionID
	}
	if esquema != nil {
		agente.EsquemaID = &esquema.ID
	}
	agente.ModificadoPor = actor
	agente.ModificadoEn = time.Now()

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		agenteRepo repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, agente.DinamicaID, datos, actor)
		if err != nil {
			return err
		}
		agente.DinamicaID = dinID
		return agenteRepo.Update(agente)
	})
	if err != nil {
		return nil, err
	}

	if len(datos) == 0 && agente.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *agente.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toAgenteResponse(agente, datos), nil
}

// Eliminar soft-borra el agente y su entidad dinámica.
func (uc *AgenteUseCase) Eliminar(ctx context.Context, id, actor string) error {
	agente, err := uc.agenteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if agente == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCRM(ctx, func(
		_ repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		_ repository.ClienteRepository,
		agenteRepo repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		if err := agenteRepo.Desactivar(id, actor); err != nil {
			return err
		}
		if agente.DinamicaID != nil {
			return dinRepo.Desactivar(*agente.DinamicaID, actor)
		}
		return nil
	})
}

// validarCatalogos acumula referencias inexistentes en valErr; un fallo del
// repositorio se devuelve como error (no es culpa de la petición).
func (uc *AgenteUseCase) validarCatalogos(managerID, regionID *string, valErr *domain.ValidationError) error {
	if managerID != nil && *managerID != "" {
		manager, err := uc.catalogoRepo.GetManager(*managerID)
		if err != nil {
			return err
		}
		if manager == nil {
			valErr.Agregar("managerId", "no existe")
		}
	}
	if regionID != nil && *regionID != "" {
		region, err := uc.catalogoRepo.GetRegion(*regionID)
		if err != nil {
			return err
		}
		if region == nil {
			valErr.Agregar("regionId", "no existe")
		}
	}
	return nil
}

func toAgenteResponse(a *entity.Agente, datos map[string]any) *dto.AgenteResponse {
	return &dto.AgenteResponse{
		ID:             a.ID,
		EmpresaID:      a.EmpresaID,
		Nombre:         a.Nombre,
		Apellido:       a.Apellido,
		Email:          a.Email,
		Telefono:       a.Telefono,
		ManagerID:      a.ManagerID,
		ManagerNombre:  a.ManagerNombre,
		RegionID:       a.RegionID,
		RegionNombre:   a.RegionNombre,
		SubTipo:        a.SubTipo,
		EsquemaID:      a.EsquemaID,
		DatosDinamicos: datos,
		CreadoEn:       a.CreadoEn,
		ModificadoEn:   a.ModificadoEn,
	}
}
