package dinamica_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinuzal/pharmind-api/internal/application/dinamica"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
)

// fakeDireccionRepo acumula las direcciones creadas en memoria.
type fakeDireccionRepo struct {
	creadas  []*entity.Direccion
	failNext bool
}

func (f *fakeDireccionRepo) Create(dir *entity.Direccion) error {
	if f.failNext {
		return fmt.Errorf("insert direccion: conexión perdida")
	}
	f.creadas = append(f.creadas, dir)
	return nil
}

func (f *fakeDireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	for _, d := range f.creadas {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func esquemaConDomicilio(campos ...entity.CampoEsquema) *entity.EsquemaPersonalizado {
	return &entity.EsquemaPersonalizado{
		ID:          "esq-1",
		EntidadTipo: entity.EntidadCliente,
		Nombre:      "Médico",
		Activo:      true,
		Version:     1,
		Campos:      campos,
	}
}

// El objeto embebido se sustituye por el id de la dirección creada y las
// sub-claves se mapean a sus columnas; las ausentes quedan null.
func TestExtraerDirecciones_SustituyeObjetoPorID(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(
		entity.CampoEsquema{Nombre: "domicilio", Tipo: "address"},
		entity.CampoEsquema{Nombre: "especialidad", Tipo: "text"},
	)
	datos := map[string]any{
		"domicilio": map[string]any{
			"calle":  "Av. Corrientes",
			"numero": "123",
			"ciudad": "CABA",
		},
		"especialidad": "Cardiología",
	}

	n, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, repo.creadas, 1)

	dir := repo.creadas[0]
	id, esString := datos["domicilio"].(string)
	require.True(t, esString, "el valor del campo address debe quedar como id string")
	assert.Equal(t, dir.ID, id)

	require.NotNil(t, dir.Calle)
	assert.Equal(t, "Av. Corrientes", *dir.Calle)
	require.NotNil(t, dir.Numero)
	assert.Equal(t, "123", *dir.Numero)
	require.NotNil(t, dir.Ciudad)
	assert.Equal(t, "CABA", *dir.Ciudad)
	assert.Nil(t, dir.Apartamento)
	assert.Nil(t, dir.Colonia)
	assert.Nil(t, dir.Estado)
	assert.Nil(t, dir.CodigoPostal)
	assert.Nil(t, dir.Pais)
	assert.Nil(t, dir.Referencia)
	assert.Nil(t, dir.Latitud)
	assert.Nil(t, dir.Longitud)

	// El campo de texto no se toca.
	assert.Equal(t, "Cardiología", datos["especialidad"])
}

// Una coordenada no parseable se descarta sin error y sin abortar el resto.
func TestExtraerDirecciones_CoordenadaInvalidaSeOmite(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(entity.CampoEsquema{Nombre: "domicilio", Tipo: "address"})
	datos := map[string]any{
		"domicilio": map[string]any{
			"ciudad":   "Rosario",
			"latitud":  "not-a-number",
			"longitud": "-60.6393",
		},
	}

	n, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, repo.creadas, 1)

	dir := repo.creadas[0]
	assert.Nil(t, dir.Latitud, "latitud ilegible debe quedar null")
	require.NotNil(t, dir.Longitud)
	assert.Equal(t, "-60.6393", dir.Longitud.String())
}

// Coordenadas como número JSON también se aceptan.
func TestExtraerDirecciones_CoordenadaNumerica(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(entity.CampoEsquema{Nombre: "domicilio", Tipo: "address"})
	datos := map[string]any{
		"domicilio": map[string]any{"latitud": -32.9468},
	}

	_, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	require.Len(t, repo.creadas, 1)
	require.NotNil(t, repo.creadas[0].Latitud)
	assert.True(t, repo.creadas[0].Latitud.Equal(decimalFrom(t, "-32.9468")))
}

// Un payload ya extraído (valor string) no genera direcciones duplicadas.
func TestExtraerDirecciones_IdempotenteSobreIDExistente(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(entity.CampoEsquema{Nombre: "domicilio", Tipo: "address"})
	datos := map[string]any{"domicilio": "dir-ya-extraida"}

	n, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, repo.creadas)
	assert.Equal(t, "dir-ya-extraida", datos["domicilio"])
}

// Varios campos address se procesan de forma independiente.
func TestExtraerDirecciones_VariosCampos(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(
		entity.CampoEsquema{Nombre: "consultorio", Tipo: "address"},
		entity.CampoEsquema{Nombre: "deposito", Tipo: "address"},
		entity.CampoEsquema{Nombre: "sucursal", Tipo: "address"},
	)
	datos := map[string]any{
		"consultorio": map[string]any{"ciudad": "Córdoba", "latitud": "zzz"},
		"deposito":    map[string]any{"ciudad": "Mendoza"},
		// "sucursal" ausente: se salta
	}

	n, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, repo.creadas, 2)
	assert.IsType(t, "", datos["consultorio"])
	assert.IsType(t, "", datos["deposito"])
	_, existe := datos["sucursal"]
	assert.False(t, existe)
}

// Un fallo de persistencia corta la extracción y propaga el error (la tx que
// envuelve la escritura revierte lo ya insertado).
func TestExtraerDirecciones_FalloDePersistenciaPropaga(t *testing.T) {
	repo := &fakeDireccionRepo{failNext: true}
	esquema := esquemaConDomicilio(entity.CampoEsquema{Nombre: "domicilio", Tipo: "address"})
	datos := map[string]any{"domicilio": map[string]any{"ciudad": "Salta"}}

	_, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domicilio")
}

// Esquema sin campos address: no-op.
func TestExtraerDirecciones_SinCamposAddress(t *testing.T) {
	repo := &fakeDireccionRepo{}
	esquema := esquemaConDomicilio(entity.CampoEsquema{Nombre: "especialidad", Tipo: "text"})
	datos := map[string]any{"especialidad": "Pediatría"}

	n, err := dinamica.ExtraerDirecciones(esquema, datos, repo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, repo.creadas)
}
