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

func nuevoRelacionUC(a *almacen) *crm.RelacionUseCase {
	return crm.NewRelacionUseCase(
		&fakeTxRunner{a: a},
		&esquemaRepo{a: a},
		&clienteRepo{a: a},
		&agenteRepo{a: a},
		&relacionRepo{a: a},
		&dinamicaRepo{a: a},
		logger.Nop(),
	)
}

func nuevoInteraccionUC(a *almacen) *crm.InteraccionUseCase {
	return crm.NewInteraccionUseCase(
		&fakeTxRunner{a: a},
		&esquemaRepo{a: a},
		&catalogoRepo{a: a},
		&clienteRepo{a: a},
		&agenteRepo{a: a},
		&relacionRepo{a: a},
		&interaccionRepo{a: a},
		&dinamicaRepo{a: a},
		logger.Nop(),
	)
}

func sembrarCarteraBase(a *almacen) (clienteID, agenteID string) {
	a.clientes["cli-1"] = &entity.Cliente{ID: "cli-1", EmpresaID: "emp-1", Nombre: "Laura", Activo: true}
	a.agentes["ag-1"] = &entity.Agente{ID: "ag-1", EmpresaID: "emp-1", Nombre: "Pedro", Activo: true}
	return "cli-1", "ag-1"
}

func TestRelacionCrearValidacionItemizada(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoRelacionUC(a)

	sec := "cli-fantasma"
	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearRelacionRequest{
		ClienteSecundario1ID: &sec,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var valErr *domain.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Len(t, valErr.Referencias, 3) // clientePrincipalId, clienteSecundario1Id, agenteId
}

func TestRelacionCrearRechazaClienteDeOtraEmpresa(t *testing.T) {
	a := nuevoAlmacen()
	a.clientes["cli-ajeno"] = &entity.Cliente{ID: "cli-ajeno", EmpresaID: "emp-2", Nombre: "Otro", Activo: true}
	a.agentes["ag-1"] = &entity.Agente{ID: "ag-1", EmpresaID: "emp-1", Nombre: "Pedro", Activo: true}
	uc := nuevoRelacionUC(a)

	_, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearRelacionRequest{
		ClientePrincipalID: "cli-ajeno",
		AgenteID:           "ag-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRelacionCrearConDatosDinamicos(t *testing.T) {
	a := nuevoAlmacen()
	clienteID, agenteID := sembrarCarteraBase(a)
	sembrarEsquema(a, "esq-rel", entity.EntidadRelacion, "cartera",
		entity.CampoEsquema{Nombre: "frecuenciaVisita", Tipo: entity.CampoNumero})
	uc := nuevoRelacionUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearRelacionRequest{
		ClientePrincipalID: clienteID,
		AgenteID:           agenteID,
		Tipo:               "cartera",
		Estado:             "activa",
		EsquemaID:          "esq-rel",
		DatosDinamicos:     map[string]any{"frecuenciaVisita": float64(2)},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EsquemaID)
	assert.False(t, resp.FechaInicio.IsZero())
	assert.Len(t, a.relaciones, 1)
	assert.Len(t, a.dinamicas, 1)

	leido, err := uc.Obtener(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(2), leido.DatosDinamicos["frecuenciaVisita"])
}

func TestRelacionEliminarCascadaDinamica(t *testing.T) {
	a := nuevoAlmacen()
	clienteID, agenteID := sembrarCarteraBase(a)
	sembrarEsquema(a, "esq-rel", entity.EntidadRelacion, "")
	uc := nuevoRelacionUC(a)

	resp, err := uc.Crear(context.Background(), "emp-1", "ana", dto.CrearRelacionRequest{
		ClientePrincipalID: clienteID,
		AgenteID:           agenteID,
		EsquemaID:          "esq-rel",
		DatosDinamicos:     map[string]any{"nota": "alta"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), resp.ID, "ana"))

	_, err = uc.Obtener(resp.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	for _, din := range a.dinamicas {
		assert.False(t, din.Activo)
	}
}

func TestInteraccionCrearYListarPorRelacion(t *testing.T) {
	a := nuevoAlmacen()
	clienteID, agenteID := sembrarCarteraBase(a)
	a.relaciones["rel-1"] = &entity.Relacion{
		ID: "rel-1", EmpresaID: "emp-1", ClientePrincipalID: clienteID, AgenteID: agenteID, Activo: true,
	}
	a.productos["prod-1"] = &entity.Producto{ID: "prod-1", EmpresaID: "emp-1", Nombre: "Cardiomax"}
	uc := nuevoInteraccionUC(a)

	productoID := "prod-1"
	resp, err := uc.Crear(context.Background(), "emp-1", "pedro", dto.CrearInteraccionRequest{
		RelacionID:      "rel-1",
		AgenteID:        agenteID,
		ClienteID:       clienteID,
		ProductoID:      &productoID,
		Tipo:            "visita",
		Notas:           "entrega de muestras",
		DuracionMinutos: 20,
	})
	require.NoError(t, err)
	assert.False(t, resp.Fecha.IsZero())

	lista, err := uc.ListarPorRelacion("rel-1", 20, 0)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "visita", lista[0].Tipo)
}

func TestInteraccionCrearRelacionInexistente(t *testing.T) {
	a := nuevoAlmacen()
	clienteID, agenteID := sembrarCarteraBase(a)
	uc := nuevoInteraccionUC(a)

	_, err := uc.Crear(context.Background(), "emp-1", "pedro", dto.CrearInteraccionRequest{
		RelacionID: "rel-fantasma",
		AgenteID:   agenteID,
		ClienteID:  clienteID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
