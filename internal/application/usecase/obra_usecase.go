package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// ObraUseCase casos de uso do catálogo de obras.
type ObraUseCase struct {
	repo repository.ObraRepository
}

// NewObraUseCase constrói o caso de uso.
func NewObraUseCase(repo repository.ObraRepository) *ObraUseCase {
	return &ObraUseCase{repo: repo}
}

// Create cadastra uma obra já ativa.
func (uc *ObraUseCase) Create(in dto.CreateObraRequest) (*dto.ObraResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	obra := &entity.Obra{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    entity.ObraStatusAtiva,
		Address:   in.Address,
		ClienteID: in.ClienteID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(obra); err != nil {
		return nil, err
	}
	return toObraResponse(obra), nil
}

// UpdateStatus muda a situação da obra (ativa/pausada/concluida).
// Obras pausadas ou concluídas deixam de aceitar movimentações.
func (uc *ObraUseCase) UpdateStatus(id, status string) (*dto.ObraResponse, error) {
	if !entity.IsValidObraStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	obra.Status = status
	obra.UpdatedAt = time.Now()
	return toObraResponse(obra), nil
}

// GetByID obtém uma obra por ID.
func (uc *ObraUseCase) GetByID(id string) (*dto.ObraResponse, error) {
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	return toObraResponse(obra), nil
}

// List lista obras com paginação.
func (uc *ObraUseCase) List(limit, offset int) (*dto.ObraListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ObraResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toObraResponse(o))
	}
	return &dto.ObraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toObraResponse(o *entity.Obra) *dto.ObraResponse {
	if o == nil {
		return nil
	}
	return &dto.ObraResponse{
		ID:        o.ID,
		Name:      o.Name,
		Status:    o.Status,
		Address:   o.Address,
		ClienteID: o.ClienteID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
