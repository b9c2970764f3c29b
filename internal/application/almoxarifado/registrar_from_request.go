package almoxarifado

import (
	"context"
	"time"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain"
)

// RegistrarFromRequest adapta o request HTTP ao caso de uso Registrar.
// A data vem como YYYY-MM-DD (vazia = hoje); hora do dia não tem semântica.
func (uc *RegistrarMovimentacaoUseCase) RegistrarFromRequest(ctx context.Context, in dto.RegistrarMovimentacaoRequest) (*MovimentacaoResult, error) {
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dto.DateLayout, in.Date)
		if err != nil {
			return nil, domain.NewValidationError(domain.ConstraintDataValida,
				"data inválida, use o formato YYYY-MM-DD")
		}
		date = parsed
	}
	input := MovimentacaoInputDTO{
		ItemID:        in.ItemID,
		ItemType:      in.ItemType,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Date:          date,
		ObraID:        in.ObraID,
		ResponsavelID: in.ResponsavelID,
		Description:   in.Description,
	}
	return uc.Registrar(ctx, input)
}
