package almoxarifado

import (
	"context"

	"github.com/construsys/obras-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o append no livro e a atualização
// do ponteiro de obra da ferramenta sejam commitados (ou desfeitos) juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		materialRepo repository.MaterialRepository,
		ferramentaRepo repository.FerramentaRepository,
		obraRepo repository.ObraRepository,
	) error) error
}
