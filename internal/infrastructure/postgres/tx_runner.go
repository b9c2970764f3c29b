package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/domain/repository"
)

var _ almoxarifado.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL. O append no
// livro e a atualização do ponteiro de obra da ferramenta são commitados (ou
// desfeitos) juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	materialRepo repository.MaterialRepository,
	ferramentaRepo repository.FerramentaRepository,
	obraRepo repository.ObraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoRepository(tx)
	materialRepo := NewMaterialRepository(tx)
	ferramentaRepo := NewFerramentaRepository(tx)
	obraRepo := NewObraRepository(tx)

	if err := fn(movRepo, materialRepo, ferramentaRepo, obraRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
