package repository

import (
	"time"

	"github.com/construsys/obras-api/internal/domain/entity"
)

// MovimentacaoFilter restringe a listagem do livro de movimentações.
// Campos nil/vazios não filtram.
type MovimentacaoFilter struct {
	ItemID   string
	ItemType string
	Type     string
	ObraID   string
	From     *time.Time
	To       *time.Time
}

// MovimentacaoRepository define a porta de persistência do livro de
// movimentações. O livro é append-only: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	List(filter MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error)
	// ListAll devolve o livro inteiro que casa com o filtro, sem paginação.
	// As projeções de saldo sempre reduzem o livro completo do escopo.
	ListAll(filter MovimentacaoFilter) ([]*entity.Movimentacao, error)
	// ListByItem devolve o livro completo de um item, sem paginação.
	// Usado pelo emissor para projetar o saldo dentro da transação.
	ListByItem(itemID string) ([]*entity.Movimentacao, error)
}
