// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests total de peticiones HTTP por método, ruta y status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pharmind_http_requests_total",
		Help: "Total de peticiones HTTP atendidas.",
	}, []string{"method", "path", "status"})

	// DireccionesExtraidas direcciones normalizadas creadas por el extractor.
	DireccionesExtraidas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmind_direcciones_extraidas_total",
		Help: "Direcciones extraídas de payloads dinámicos.",
	})

	// DatosCorruptos payloads dinámicos que no decodificaron como JSON en lectura.
	DatosCorruptos = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmind_datos_corruptos_total",
		Help: "Payloads dinámicos ilegibles tolerados en lectura.",
	})
)
