package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// Asegura que TxRunner implementa menuimport.ImportTxRunner.
var _ appmenuimport.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImport inicia una transacción, ejecuta fn con los repos de la carga
// masiva atados a la tx y hace Commit o Rollback. Un fallo deja el estado
// final como desconocido para el caller; repetir la carga es seguro porque la
// creación es idempotente por clave natural.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	catRepo repository.CategoryRepository,
	subRepo repository.SubCategoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCategoryRepository(tx), NewSubCategoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
