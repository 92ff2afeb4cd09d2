package busqueda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/martinuzal/pharmind-api/pkg/busqueda"
)

func TestNormalizar_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "cardiologia", busqueda.Normalizar("  Cardiología "))
	assert.Equal(t, "nunez", busqueda.Normalizar("Núñez"))
	assert.Equal(t, "jose maria", busqueda.Normalizar("José María"))
}

func TestNormalizar_TextoPlanoQuedaIgual(t *testing.T) {
	assert.Equal(t, "rosario", busqueda.Normalizar("rosario"))
	assert.Equal(t, "", busqueda.Normalizar("   "))
}
