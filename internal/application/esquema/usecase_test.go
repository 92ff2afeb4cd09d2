package esquema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/application/esquema"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
)

// fakeEsquemaRepo guarda esquemas en memoria respetando el contrato del puerto.
type fakeEsquemaRepo struct {
	porID map[string]*entity.EsquemaPersonalizado
}

func newFakeEsquemaRepo() *fakeEsquemaRepo {
	return &fakeEsquemaRepo{porID: make(map[string]*entity.EsquemaPersonalizado)}
}

func (f *fakeEsquemaRepo) Create(e *entity.EsquemaPersonalizado) error {
	copia := *e
	f.porID[e.ID] = &copia
	return nil
}

func (f *fakeEsquemaRepo) GetByID(id string) (*entity.EsquemaPersonalizado, error) {
	e, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (f *fakeEsquemaRepo) GetActivoPorTriple(empresaID *string, tipo entity.EntidadTipo, subTipo string) (*entity.EsquemaPersonalizado, error) {
	for _, e := range f.porID {
		if !e.Activo || e.EntidadTipo != tipo || e.SubTipo != subTipo {
			continue
		}
		if (e.EmpresaID == nil) != (empresaID == nil) {
			continue
		}
		if e.EmpresaID != nil && *e.EmpresaID != *empresaID {
			continue
		}
		copia := *e
		return &copia, nil
	}
	return nil, nil
}

func (f *fakeEsquemaRepo) ListActivos(empresaID *string, tipo entity.EntidadTipo) ([]*entity.EsquemaPersonalizado, error) {
	var out []*entity.EsquemaPersonalizado
	for _, e := range f.porID {
		if e.Activo && e.EntidadTipo == tipo {
			copia := *e
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeEsquemaRepo) Update(e *entity.EsquemaPersonalizado) error {
	copia := *e
	f.porID[e.ID] = &copia
	return nil
}

func (f *fakeEsquemaRepo) Desactivar(id string, actor string) error {
	if e, ok := f.porID[id]; ok {
		e.Activo = false
		e.ModificadoPor = actor
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestCrear_AltaBasica(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())

	resp, err := uc.Crear(strPtr("emp-1"), "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Cliente",
		SubTipo:     "Médico",
		Nombre:      "Ficha médica",
		Campos: []dto.CampoRequest{
			{Nombre: "domicilio", Tipo: "address"},
			{Nombre: "especialidad", Tipo: "text"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Version)
	assert.True(t, resp.Activo)
	assert.Equal(t, "Cliente", resp.EntidadTipo)
	require.Len(t, resp.Campos, 2)
	assert.Equal(t, "address", resp.Campos[0].Tipo)
}

func TestCrear_SinNombreNiTipoEsInvalido(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())

	_, err := uc.Crear(nil, "admin-1", dto.CrearEsquemaRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Referencias, 2)
}

// Dos esquemas activos con el mismo triple (empresa, tipo, subtipo) → Conflict.
func TestCrear_TripleDuplicadoEsConflict(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())
	empresa := strPtr("emp-1")

	_, err := uc.Crear(empresa, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Cliente", SubTipo: "Médico", Nombre: "Ficha A",
	})
	require.NoError(t, err)

	_, err = uc.Crear(empresa, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Cliente", SubTipo: "Médico", Nombre: "Ficha B",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Otro subtipo del mismo tipo no choca.
	_, err = uc.Crear(empresa, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Cliente", SubTipo: "Farmacia", Nombre: "Ficha C",
	})
	assert.NoError(t, err)
}

func TestCrear_TipoFueraDelVocabularioEsInvalido(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())
	_, err := uc.Crear(nil, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Producto", Nombre: "Ficha",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El parche incrementa versión y conserva lo no tocado.
func TestActualizar_IncrementaVersion(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())
	creado, err := uc.Crear(nil, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Agente", Nombre: "Perfil agente", Descripcion: "original",
	})
	require.NoError(t, err)

	actualizado, err := uc.Actualizar(creado.ID, "admin-2", dto.ActualizarEsquemaRequest{
		Nombre: strPtr("Perfil agente v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, actualizado.Version)
	assert.Equal(t, "Perfil agente v2", actualizado.Nombre)
	assert.Equal(t, "original", actualizado.Descripcion, "los campos no parchados se conservan")

	otra, err := uc.Actualizar(creado.ID, "admin-2", dto.ActualizarEsquemaRequest{
		Orden: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, otra.Version, "la versión es monótona")
}

func TestActualizar_NoExisteEsNotFound(t *testing.T) {
	uc := esquema.NewUseCase(newFakeEsquemaRepo())
	_, err := uc.Actualizar("no-existe", "admin-1", dto.ActualizarEsquemaRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDesactivar_SacaDeListados(t *testing.T) {
	repo := newFakeEsquemaRepo()
	uc := esquema.NewUseCase(repo)
	creado, err := uc.Crear(nil, "admin-1", dto.CrearEsquemaRequest{
		EntidadTipo: "Interaccion", Nombre: "Visita",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(creado.ID, "admin-1"))

	activos, err := uc.ListarActivos(nil, "Interaccion")
	require.NoError(t, err)
	assert.Empty(t, activos)

	// Desactivar de nuevo con id inexistente.
	err = uc.Desactivar("no-existe", "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func intPtr(n int) *int { return &n }
