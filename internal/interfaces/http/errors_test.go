package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinuzal/pharmind-api/internal/application/dto"
	"github.com/martinuzal/pharmind-api/internal/domain"
)

func responderCon(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return responderError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(nethttp.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, reqErr := io.ReadAll(resp.Body)
	require.NoError(t, reqErr)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestResponderErrorMapeaDominio(t *testing.T) {
	status, out := responderCon(t, domain.ErrNotFound)
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.Code)

	status, out = responderCon(t, domain.ErrConflict)
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", out.Code)
}

func TestResponderErrorValidacionItemizada(t *testing.T) {
	valErr := &domain.ValidationError{}
	valErr.Agregar("regionId", "no existe")
	valErr.Agregar("esquemaId", "requerido")

	status, out := responderCon(t, valErr)
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Len(t, out.Details, 2)
}

// Un error no mapeado responde 500 con mensaje genérico: el detalle interno
// (driver, hosts, SQL) jamás viaja al cliente.
func TestResponderErrorInternoNoFiltraDetalle(t *testing.T) {
	status, out := responderCon(t, errors.New("pgx: dial tcp 10.0.0.7:5432: conexión rechazada"))
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno", out.Message)
	assert.NotContains(t, out.Message, "pgx")
	assert.Empty(t, out.Details)
}
