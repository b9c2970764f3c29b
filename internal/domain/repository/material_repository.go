package repository

import "github.com/construsys/obras-api/internal/domain/entity"

// MaterialRepository define a porta de persistência do catálogo de materiais.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate bloqueia a linha do material (SELECT FOR UPDATE) para
	// serializar emissões concorrentes sobre o mesmo item.
	GetForUpdate(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	List(limit, offset int) ([]*entity.Material, error)
}
