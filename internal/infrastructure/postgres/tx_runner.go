package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

var _ crm.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCRM inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Las fachadas lo usan para que direcciones extraídas,
// entidad dinámica y fila estática se persistan de forma atómica.
func (r *TxRunner) RunCRM(ctx context.Context, fn func(
	dirRepo repository.DireccionRepository,
	dinRepo repository.EntidadDinamicaRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
	relacionRepo repository.RelacionRepository,
	interaccionRepo repository.InteraccionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dirRepo := NewDireccionRepository(tx)
	dinRepo := NewEntidadDinamicaRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	agenteRepo := NewAgenteRepository(tx)
	relacionRepo := NewRelacionRepository(tx)
	interaccionRepo := NewInteraccionRepository(tx)

	if err := fn(dirRepo, dinRepo, clienteRepo, agenteRepo, relacionRepo, interaccionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
