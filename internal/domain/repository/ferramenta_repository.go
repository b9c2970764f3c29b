package repository

import "github.com/construsys/obras-api/internal/domain/entity"

// FerramentaRepository define a porta de persistência do catálogo de ferramentas,
// incluindo o ponteiro desnormalizado de obra atual.
type FerramentaRepository interface {
	Create(ferramenta *entity.Ferramenta) error
	GetByID(id string) (*entity.Ferramenta, error)
	// GetForUpdate bloqueia a linha da ferramenta (SELECT FOR UPDATE) para
	// serializar emissões concorrentes sobre o mesmo item.
	GetForUpdate(id string) (*entity.Ferramenta, error)
	Update(ferramenta *entity.Ferramenta) error
	// UpdateObraAtual grava apenas o ponteiro de obra atual (nil = central).
	UpdateObraAtual(id string, obraID *string) error
	List(limit, offset int) ([]*entity.Ferramenta, error)
}
