package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do livro de movimentações sobre PostgreSQL
// (usável com pool ou tx). A tabela é append-only: não há UPDATE nem DELETE.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

const movimentacaoColumns = `id, item_id, item_type, type, quantity, date, obra_id, responsavel_id, description, created_at`

// Create persiste uma movimentação no livro.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes (id, item_id, item_type, type, quantity, date, obra_id, responsavel_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ItemID, mov.ItemType, mov.Type, mov.Quantity,
		mov.Date, mov.ObraID, mov.ResponsavelID, mov.Description, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes WHERE id = $1`
	var m entity.Movimentacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ItemID, &m.ItemType, &m.Type, &m.Quantity,
		&m.Date, &m.ObraID, &m.ResponsavelID, &m.Description, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return &m, nil
}

// List lista movimentações com filtros e paginação, mais recentes primeiro.
func (r *MovimentacaoRepo) List(filter repository.MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error) {
	query, args := buildListQuery(filter)
	pos := len(args) + 1
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryMovimentacoes(query, args)
}

// ListAll devolve o livro inteiro que casa com o filtro, sem paginação.
func (r *MovimentacaoRepo) ListAll(filter repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	query, args := buildListQuery(filter)
	return r.queryMovimentacoes(query, args)
}

// ListByItem devolve o livro completo de um item, para projeção de saldo.
func (r *MovimentacaoRepo) ListByItem(itemID string) ([]*entity.Movimentacao, error) {
	return r.ListAll(repository.MovimentacaoFilter{ItemID: itemID})
}

func buildListQuery(filter repository.MovimentacaoFilter) (string, []any) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.ItemType != "" {
		query += fmt.Sprintf(" AND item_type = $%d", pos)
		args = append(args, filter.ItemType)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.ObraID != "" {
		query += fmt.Sprintf(" AND obra_id = $%d", pos)
		args = append(args, filter.ObraID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	return query, args
}

func (r *MovimentacaoRepo) queryMovimentacoes(query string, args []any) ([]*entity.Movimentacao, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemType, &m.Type, &m.Quantity,
			&m.Date, &m.ObraID, &m.ResponsavelID, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
