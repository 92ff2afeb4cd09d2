// Package esquema implementa el store de esquemas personalizados: definiciones
// versionadas de los campos variables de cada tipo de entidad CRM.
package esquema

import (
	"time"

	"github.com/google/uuid"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// UseCase casos de uso de esquemas personalizados.
type UseCase struct {
	repo repository.EsquemaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.EsquemaRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear da de alta un esquema. Falla con ErrInvalidInput si falta nombre o tipo,
// y con ErrConflict si ya hay un esquema activo para (empresa, tipo, subtipo).
// Los tipos de campo se aceptan tal como vienen: un tipo fuera del vocabulario no
// se rechaza, los consumidores caen al comportamiento por defecto.
func (uc *UseCase) Crear(empresaID *string, actor string, in dto.CrearEsquemaRequest) (*dto.EsquemaResponse, error) {
	valErr := &domain.ValidationError{}
	if in.Nombre == "" {
		valErr.Agregar("nombre", "requerido")
	}
	tipo := entity.EntidadTipo(in.EntidadTipo)
	if in.EntidadTipo == "" {
		valErr.Agregar("entidadTipo", "requerido")
	} else if !entity.EntidadTipoValido(tipo) {
		valErr.Agregar("entidadTipo", "debe ser Cliente, Agente, Relacion o Interaccion")
	}
	for _, c := range in.Campos {
		if c.Nombre == "" {
			valErr.Agregar("campos", "todos los campos requieren nombre")
			break
		}
	}
	if !valErr.Vacio() {
		return nil, valErr
	}

	existente, err := uc.repo.GetActivoPorTriple(empresaID, tipo, in.SubTipo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	esquema := &entity.EsquemaPersonalizado{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		EntidadTipo:     tipo,
		SubTipo:         in.SubTipo,
		Nombre:          in.Nombre,
		Descripcion:     in.Descripcion,
		Icono:           in.Icono,
		Color:           in.Color,
		Orden:           in.Orden,
		Activo:          true,
		Version:         1,
		Campos:          camposDesdeRequest(in.Campos),
		Validaciones:    in.Validaciones,
		Correlaciones:   in.Correlaciones,
		ConfiguracionUI: in.ConfiguracionUI,
		CreadoPor:       actor,
		ModificadoPor:   actor,
		CreadoEn:        now,
		ModificadoEn:    now,
	}
	if err := uc.repo.Create(esquema); err != nil {
		return nil, err
	}
	return dto.ToEsquemaResponse(esquema), nil
}

// Obtener devuelve un esquema por id. ErrNotFound si no existe o está borrado.
func (uc *UseCase) Obtener(id string) (*dto.EsquemaResponse, error) {
	esquema, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if esquema == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToEsquemaResponse(esquema), nil
}

// ObtenerPorTipoYSubTipo busca el esquema activo del triple. SubTipo vacío busca
// el esquema genérico del tipo.
func (uc *UseCase) ObtenerPorTipoYSubTipo(empresaID *string, tipo, subTipo string) (*dto.EsquemaResponse, error) {
	t := entity.EntidadTipo(tipo)
	if !entity.EntidadTipoValido(t) {
		return nil, domain.ErrInvalidInput
	}
	esquema, err := uc.repo.GetActivoPorTriple(empresaID, t, subTipo)
	if err != nil {
		return nil, err
	}
	if esquema == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToEsquemaResponse(esquema), nil
}

// ListarActivos lista los esquemas activos de un tipo, ordenados por orden y nombre.
func (uc *UseCase) ListarActivos(empresaID *string, tipo string) ([]*dto.EsquemaResponse, error) {
	t := entity.EntidadTipo(tipo)
	if !entity.EntidadTipoValido(t) {
		return nil, domain.ErrInvalidInput
	}
	esquemas, err := uc.repo.ListActivos(empresaID, t)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EsquemaResponse, 0, len(esquemas))
	for _, e := range esquemas {
		out = append(out, dto.ToEsquemaResponse(e))
	}
	return out, nil
}

// Actualizar aplica un parche al esquema (solo campos no-nil) e incrementa la
// versión. El id y el triple (empresa, tipo, subtipo) son estables.
func (uc *UseCase) Actualizar(id string, actor string, in dto.ActualizarEsquemaRequest) (*dto.EsquemaResponse, error) {
	esquema, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if esquema == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			valErr := &domain.ValidationError{}
			valErr.Agregar("nombre", "no puede quedar vacío")
			return nil, valErr
		}
		esquema.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		esquema.Descripcion = *in.Descripcion
	}
	if in.Icono != nil {
		esquema.Icono = *in.Icono
	}
	if in.Color != nil {
		esquema.Color = *in.Color
	}
	if in.Orden != nil {
		esquema.Orden = *in.Orden
	}
	if in.Campos != nil {
		esquema.Campos = camposDesdeRequest(in.Campos)
	}
	if in.Validaciones != nil {
		esquema.Validaciones = in.Validaciones
	}
	if in.Correlaciones != nil {
		esquema.Correlaciones = in.Correlaciones
	}
	if in.ConfiguracionUI != nil {
		esquema.ConfiguracionUI = in.ConfiguracionUI
	}

	esquema.Version++
	esquema.ModificadoPor = actor
	esquema.ModificadoEn = time.Now()

	if err := uc.repo.Update(esquema); err != nil {
		return nil, err
	}
	return dto.ToEsquemaResponse(esquema), nil
}

// Desactivar soft-borra el esquema. Las entidades dinámicas existentes siguen
// consultables contra el esquema ya inactivo.
func (uc *UseCase) Desactivar(id string, actor string) error {
	esquema, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if esquema == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id, actor)
}

func camposDesdeRequest(in []dto.CampoRequest) []entity.CampoEsquema {
	campos := make([]entity.CampoEsquema, 0, len(in))
	for _, c := range in {
		campos = append(campos, entity.CampoEsquema{
			Nombre:    c.Nombre,
			Tipo:      c.Tipo,
			Etiqueta:  c.Etiqueta,
			Opciones:  c.Opciones,
			Requerido: c.Requerido,
		})
	}
	return campos
}
