// Package busqueda normaliza texto para búsquedas insensibles a acentos y mayúsculas,
// pensado para nombres propios en español (médicos, agentes, instituciones).
package busqueda

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar devuelve el término en minúsculas, sin acentos y sin espacios sobrantes.
// "  Cardiología " -> "cardiologia". Si la transformación falla se devuelve el término
// original en minúsculas: la búsqueda degrada, no rompe.
func Normalizar(termino string) string {
	termino = strings.TrimSpace(termino)
	plano, _, err := transform.String(quitarAcentos, termino)
	if err != nil {
		return strings.ToLower(termino)
	}
	return strings.ToLower(plano)
}
