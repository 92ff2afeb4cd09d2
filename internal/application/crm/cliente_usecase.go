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

// ClienteUseCase fachada de clientes: merge estático + dinámico y ciclo de vida
// transaccional de la porción dinámica.
type ClienteUseCase struct {
	txRunner     TxRunner
	esquemaRepo  repository.EsquemaRepository
	catalogoRepo repository.CatalogoRepository
	clienteRepo  repository.ClienteRepository
	dinamicaRepo repository.EntidadDinamicaRepository
	log          *logger.Logger
}

// NewClienteUseCase construye la fachada. Los repos recibidos aquí se usan para
// lecturas; las escrituras corren sobre los repos de la transacción del TxRunner.
func NewClienteUseCase(
	txRunner TxRunner,
	esquemaRepo repository.EsquemaRepository,
	catalogoRepo repository.CatalogoRepository,
	clienteRepo repository.ClienteRepository,
	dinamicaRepo repository.EntidadDinamicaRepository,
	log *logger.Logger,
) *ClienteUseCase {
	return &ClienteUseCase{
		txRunner:     txRunner,
		esquemaRepo:  esquemaRepo,
		catalogoRepo: catalogoRepo,
		clienteRepo:  clienteRepo,
		dinamicaRepo: dinamicaRepo,
		log:          log,
	}
}

// Crear da de alta un cliente. Valida esquema y referencias de catálogo (itemizado),
// extrae direcciones del payload dinámico y persiste todo en una sola transacción.
func (uc *ClienteUseCase) Crear(ctx context.Context, empresaID, actor string, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	valErr := &domain.ValidationError{}
	if in.Nombre == "" {
		valErr.Agregar("nombre", "requerido")
	}
	esquema, err := validarEsquema(uc.esquemaRepo, in.EsquemaID, entity.EntidadCliente, len(in.DatosDinamicos) > 0, true, valErr)
	if err != nil {
		return nil, err
	}
	if err := uc.validarCatalogos(in.RegionID, in.DistritoID, valErr); err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	now := time.Now()
	cliente := &entity.Cliente{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Institucion:   in.Institucion,
		RegionID:      in.RegionID,
		DistritoID:    in.DistritoID,
		SubTipo:       in.SubTipo,
		Activo:        true,
		CreadoPor:     actor,
		ModificadoPor: actor,
		CreadoEn:      now,
		ModificadoEn:  now,
	}
	if esquema != nil {
		cliente.EsquemaID = &esquema.ID
	}

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		clienteRepo repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, nil, datos, actor)
		if err != nil {
			return err
		}
		cliente.DinamicaID = dinID
		return clienteRepo.Create(cliente)
	})
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente, datos), nil
}

// Obtener devuelve la vista combinada del cliente. Un payload dinámico corrupto
// no falla la lectura: se devuelve sin datos dinámicos (warn en el log).
func (uc *ClienteUseCase) Obtener(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	datos := map[string]any{}
	if cliente.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *cliente.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toClienteResponse(cliente, datos), nil
}

// Listar pagina clientes activos de la empresa; el término de búsqueda se
// normaliza (minúsculas, sin acentos) antes de consultar.
func (uc *ClienteUseCase) Listar(empresaID, terminoBusqueda string, limit, offset int) ([]*dto.ClienteResponse, error) {
	lista, err := uc.clienteRepo.ListByEmpresa(empresaID, busqueda.Normalizar(terminoBusqueda), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(lista))
	for _, c := range lista {
		// Listados sin porción dinámica: el detalle se pide por id.
		out = append(out, toClienteResponse(c, nil))
	}
	return out, nil
}

// Actualizar aplica un parche sobre las columnas estáticas y, si vienen datos
// dinámicos, reemplaza por completo el payload (extracción de direcciones incluida).
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id, actor string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	valErr := &domain.ValidationError{}
	esquemaID := ""
	if in.EsquemaID != nil {
		esquemaID = *in.EsquemaID
	} else if cliente.EsquemaID != nil {
		esquemaID = *cliente.EsquemaID
	}
	// Activo solo se exige si esta escritura crea la entidad dinámica.
	esquema, err := validarEsquema(uc.esquemaRepo, esquemaID, entity.EntidadCliente,
		len(in.DatosDinamicos) > 0, cliente.DinamicaID == nil, valErr)
	if err != nil {
		return nil, err
	}
	if err := uc.validarCatalogos(in.RegionID, in.DistritoID, valErr); err != nil {
		return nil, err
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	aplicar(&cliente.Nombre, in.Nombre)
	aplicar(&cliente.Apellido, in.Apellido)
	aplicar(&cliente.Email, in.Email)
	aplicar(&cliente.Telefono, in.Telefono)
	aplicar(&cliente.Institucion, in.Institucion)
	if in.RegionID != nil {
		cliente.RegionID = in.RegionID
	}
	if in.DistritoID != nil {
		cliente.DistritoID = in.DistritoID
	}
	if esquema != nil {
		cliente.EsquemaID = &esquema.ID
	}
	cliente.ModificadoPor = actor
	cliente.ModificadoEn = time.Now()

	datos := in.DatosDinamicos
	err = uc.txRunner.RunCRM(ctx, func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		clienteRepo repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		dinID, err := sincronizarDinamica(dirRepo, dinRepo, esquema, cliente.DinamicaID, datos, actor)
		if err != nil {
			return err
		}
		cliente.DinamicaID = dinID
		return clienteRepo.Update(cliente)
	})
	if err != nil {
		return nil, err
	}

	if len(datos) == 0 && cliente.DinamicaID != nil {
		datos, err = dinamica.Leer(uc.dinamicaRepo, *cliente.DinamicaID, uc.log)
		if err != nil {
			return nil, err
		}
	}
	return toClienteResponse(cliente, datos), nil
}

// Eliminar soft-borra el cliente y cascada el soft-delete a su entidad dinámica.
// Las direcciones extraídas no se tocan: son historial inmutable.
func (uc *ClienteUseCase) Eliminar(ctx context.Context, id, actor string) error {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCRM(ctx, func(
		_ repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		clienteRepo repository.ClienteRepository,
		_ repository.AgenteRepository,
		_ repository.RelacionRepository,
		_ repository.InteraccionRepository,
	) error {
		if err := clienteRepo.Desactivar(id, actor); err != nil {
			return err
		}
		if cliente.DinamicaID != nil {
			return dinRepo.Desactivar(*cliente.DinamicaID, actor)
		}
		return nil
	})
}

// validarCatalogos acumula referencias inexistentes en valErr; un fallo del
// repositorio se devuelve como error (no es culpa de la petición).
func (uc *ClienteUseCase) validarCatalogos(regionID, distritoID *string, valErr *domain.ValidationError) error {
	if regionID != nil && *regionID != "" {
		region, err := uc.catalogoRepo.GetRegion(*regionID)
		if err != nil {
			return err
		}
		if region == nil {
			valErr.Agregar("regionId", "no existe")
		}
	}
	if distritoID != nil && *distritoID != "" {
		distrito, err := uc.catalogoRepo.GetDistrito(*distritoID)
		if err != nil {
			return err
		}
		if distrito == nil {
			valErr.Agregar("distritoId", "no existe")
		}
	}
	return nil
}

func toClienteResponse(c *entity.Cliente, datos map[string]any) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID,
		EmpresaID:      c.EmpresaID,
		Nombre:         c.Nombre,
		Apellido:       c.Apellido,
		Email:          c.Email,
		Telefono:       c.Telefono,
		Institucion:    c.Institucion,
		RegionID:       c.RegionID,
		RegionNombre:   c.RegionNombre,
		DistritoID:     c.DistritoID,
		DistritoNombre: c.DistritoNombre,
		SubTipo:        c.SubTipo,
		EsquemaID:      c.EsquemaID,
		DatosDinamicos: datos,
		CreadoEn:       c.CreadoEn,
		ModificadoEn:   c.ModificadoEn,
	}
}
