package crm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/pkg/logger"
)

func nuevoClienteUC(a *almacen) *crm.ClienteUseCase {
	return crm.NewClienteUseCase(
		&fakeTxRunner{a: a},
		&esquemaRepo{a: a},
		&catalogoRepo{a: a},
		&clienteRepo{a: a},
		&dinamicaRepo{a: a},
		logger.Nop(),
	)
}

func TestClienteCrearSinDireccionesRoundTrip(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "especialidad", Tipo: entity.CampoTexto},
		entity.CampoEsquema{Nombre: "pacientesPorMes", Tipo: entity.CampoNumero},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:    "Laura",
		Apellido:  "Gómez",
		EsquemaID: "esq-1",
		DatosDinamicos: map[string]any{
			"especialidad":    "Cardiología",
			"pacientesPorMes": float64(120),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EsquemaID)

	leido, err := uc.Obtener(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laura", leido.Nombre)
	assert.Equal(t, "Cardiología", leido.DatosDinamicos["especialidad"])
	assert.Equal(t, float64(120), leido.DatosDinamicos["pacientesPorMes"])
	assert.Empty(t, a.direcciones, "sin campos address no debe crearse ninguna dirección")
}

func TestClienteCrearExtraeDirecciones(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "domicilio", Tipo: entity.CampoDireccion},
		entity.CampoEsquema{Nombre: "especialidad", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:    "Laura",
		EsquemaID: "esq-1",
		DatosDinamicos: map[string]any{
			"domicilio": map[string]any{
				"calle":   "San Martín 450",
				"ciudad":  "Rosario",
				"latitud": "-32.9468",
			},
			"especialidad": "Cardiología",
		},
	})
	require.NoError(t, err)

	require.Len(t, a.direcciones, 1)
	var dir *entity.Direccion
	for _, d := range a.direcciones {
		dir = d
	}
	require.NotNil(t, dir.Ciudad)
	assert.Equal(t, "Rosario", *dir.Ciudad)
	require.NotNil(t, dir.Calle)
	assert.Equal(t, "San Martín 450", *dir.Calle)
	require.NotNil(t, dir.Latitud)
	assert.Equal(t, "-32.9468", dir.Latitud.String())

	// En el payload persistido el objeto queda sustituido por el id de la dirección.
	assert.Equal(t, dir.ID, resp.DatosDinamicos["domicilio"])
	assert.Equal(t, "Cardiología", resp.DatosDinamicos["especialidad"])

	require.NotNil(t, resp.DatosDinamicos)
	require.Len(t, a.dinamicas, 1)
	for _, din := range a.dinamicas {
		datos, ok := din.DecodificarDatos()
		require.True(t, ok)
		assert.Equal(t, dir.ID, datos["domicilio"])
	}
}

func TestClienteActualizarReemplazaPayloadCompleto(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "a", Tipo: entity.CampoTexto},
		entity.CampoEsquema{Nombre: "b", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-1",
		DatosDinamicos: map[string]any{"a": "1"},
	})
	require.NoError(t, err)

	actualizado, err := uc.Actualizar(context.Background(), resp.ID, "ana", dto.ActualizarClienteRequest{
		DatosDinamicos: map[string]any{"b": "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": "2"}, actualizado.DatosDinamicos)

	leido, err := uc.Obtener(resp.ID)
	require.NoError(t, err)
	_, tieneA := leido.DatosDinamicos["a"]
	assert.False(t, tieneA, "el reemplazo es total, la clave anterior no debe sobrevivir")
	assert.Equal(t, "2", leido.DatosDinamicos["b"])
	assert.Len(t, a.dinamicas, 1, "el update reutiliza la entidad dinámica existente")
}

func TestClienteActualizarSinDatosConservaDinamica(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "especialidad", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-1",
		DatosDinamicos: map[string]any{"especialidad": "Cardiología"},
	})
	require.NoError(t, err)

	nuevoNombre := "Laura Beatriz"
	actualizado, err := uc.Actualizar(context.Background(), resp.ID, "ana", dto.ActualizarClienteRequest{
		Nombre: &nuevoNombre,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laura Beatriz", actualizado.Nombre)
	assert.Equal(t, "Cardiología", actualizado.DatosDinamicos["especialidad"])
}

func TestClienteCrearRollbackSiFallaInsercion(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "domicilio", Tipo: entity.CampoDireccion},
	)
	a.fallaCliente = true
	uc := nuevoClienteUC(a)

	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:    "Laura",
		EsquemaID: "esq-1",
		DatosDinamicos: map[string]any{
			"domicilio": map[string]any{"ciudad": "Rosario"},
		},
	})
	require.Error(t, err)

	assert.Empty(t, a.clientes)
	assert.Empty(t, a.dinamicas, "la transacción revierte la entidad dinámica")
	assert.Empty(t, a.direcciones, "la transacción revierte las direcciones extraídas")
}

func TestClienteCrearValidacionItemizada(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoClienteUC(a)

	regionInexistente := "reg-999"
	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		RegionID:       &regionInexistente,
		DatosDinamicos: map[string]any{"especialidad": "Cardiología"},
	})
	require.Error(t, err)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Referencias, 3) // nombre, esquemaId, regionId
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestClienteCrearEsquemaDeOtroTipo(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-agente", entity.EntidadAgente, "kam",
		entity.CampoEsquema{Nombre: "zona", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-agente",
		DatosDinamicos: map[string]any{"zona": "sur"},
	})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Referencias, 1)
	assert.Contains(t, valErr.Referencias[0], "esquemaId")
}

func TestClienteObtenerInexistente(t *testing.T) {
	uc := nuevoClienteUC(nuevoAlmacen())

	_, err := uc.Obtener("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Actualizar(context.Background(), "no-existe", "ana", dto.ActualizarClienteRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Eliminar(context.Background(), "no-existe", "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteEliminarCascadaDinamica(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "especialidad", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-1",
		DatosDinamicos: map[string]any{"especialidad": "Cardiología"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), resp.ID, "ana"))

	_, err = uc.Obtener(resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, din := range a.dinamicas {
		assert.False(t, din.Activo, "el soft-delete cascada a la entidad dinámica")
		assert.Equal(t, "ana", din.ModificadoPor)
	}
}

// Cambiar de esquema en un update re-liga la entidad dinámica: la fila estática
// y su dinámica nunca apuntan a esquemas distintos.
func TestClienteActualizarConNuevoEsquemaReligaDinamica(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico",
		entity.CampoEsquema{Nombre: "especialidad", Tipo: entity.CampoTexto},
	)
	sembrarEsquema(a, "esq-2", entity.EntidadCliente, "farmaceutico",
		entity.CampoEsquema{Nombre: "cadena", Tipo: entity.CampoTexto},
	)
	uc := nuevoClienteUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-1",
		DatosDinamicos: map[string]any{"especialidad": "Cardiología"},
	})
	require.NoError(t, err)

	nuevoEsquema := "esq-2"
	actualizado, err := uc.Actualizar(context.Background(), resp.ID, "ana", dto.ActualizarClienteRequest{
		EsquemaID:      &nuevoEsquema,
		DatosDinamicos: map[string]any{"cadena": "Farmaplus"},
	})
	require.NoError(t, err)
	require.NotNil(t, actualizado.EsquemaID)
	assert.Equal(t, "esq-2", *actualizado.EsquemaID)

	cliente := a.clientes[resp.ID]
	require.NotNil(t, cliente.DinamicaID)
	din := a.dinamicas[*cliente.DinamicaID]
	require.NotNil(t, din)
	assert.Equal(t, *cliente.EsquemaID, din.EsquemaID)
	assert.Equal(t, "esq-2", din.EsquemaID)
}

// Un fallo de almacenamiento al resolver referencias se propaga tal cual: no debe
// degradarse a un 400 de validación que diga "no existe".
func TestClienteCrearFalloDeLecturaSePropaga(t *testing.T) {
	a := nuevoAlmacen()
	sembrarEsquema(a, "esq-1", entity.EntidadCliente, "medico")
	uc := nuevoClienteUC(a)

	errConexion := errors.New("conexión perdida")
	a.errLectura = errConexion

	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:         "Laura",
		EsquemaID:      "esq-1",
		DatosDinamicos: map[string]any{"especialidad": "Cardiología"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errConexion)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))

	regionID := "reg-1"
	_, err = uc.Crear(context.Background(), "emp-1", "ana", dto.CrearClienteRequest{
		Nombre:   "Laura",
		RegionID: &regionID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errConexion)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}
