// Package crm implementa las fachadas de entidad: la vista combinada
// estático + dinámico de Cliente, Agente, Relacion e Interaccion, y el ciclo de
// vida transaccional de su porción dinámica.
package crm

import (
	"context"

	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma transacción.
// Toda escritura de fachada (direcciones extraídas + entidad dinámica + fila
// estática) corre dentro de un Run: si cualquier paso falla, nada queda commiteado.
type TxRunner interface {
	RunCRM(ctx context.Context, fn func(
		dirRepo repository.DireccionRepository,
		dinRepo repository.EntidadDinamicaRepository,
		clienteRepo repository.ClienteRepository,
		agenteRepo repository.AgenteRepository,
		relacionRepo repository.RelacionRepository,
		interaccionRepo repository.InteraccionRepository,
	) error) error
}
