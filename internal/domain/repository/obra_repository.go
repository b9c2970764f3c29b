package repository

import "github.com/construsys/obras-api/internal/domain/entity"

// ObraRepository define a porta de persistência do catálogo de obras.
type ObraRepository interface {
	Create(obra *entity.Obra) error
	GetByID(id string) (*entity.Obra, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Obra, error)
	// ListAtivas devolve somente obras ativas (destinos válidos de movimentação).
	ListAtivas() ([]*entity.Obra, error)
}
