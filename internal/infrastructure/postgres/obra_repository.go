package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
)

var _ repository.ObraRepository = (*ObraRepo)(nil)

// ObraRepo implementação do catálogo de obras sobre PostgreSQL (usável com pool ou tx).
type ObraRepo struct {
	q Querier
}

// NewObraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewObraRepository(q Querier) *ObraRepo {
	return &ObraRepo{q: q}
}

const obraColumns = `id, name, status, address, cliente_id, created_at, updated_at`

// Create persiste uma obra.
func (r *ObraRepo) Create(obra *entity.Obra) error {
	query := `
		INSERT INTO obras (id, name, status, address, cliente_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		obra.ID, obra.Name, obra.Status, obra.Address, obra.ClienteID,
		obra.CreatedAt, obra.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create obra: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por ID.
func (r *ObraRepo) GetByID(id string) (*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras WHERE id = $1`
	var o entity.Obra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Status, &o.Address, &o.ClienteID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra: %w", err)
	}
	return &o, nil
}

// UpdateStatus muda a situação da obra.
func (r *ObraRepo) UpdateStatus(id, status string) error {
	query := `UPDATE obras SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update status obra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista obras por nome, paginado.
func (r *ObraRepo) List(limit, offset int) ([]*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras ORDER BY name LIMIT $1 OFFSET $2`
	return r.query(query, limit, offset)
}

// ListAtivas devolve somente obras ativas, destinos válidos de movimentação.
func (r *ObraRepo) ListAtivas() ([]*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras WHERE status = $1 ORDER BY name`
	return r.query(query, entity.ObraStatusAtiva)
}

func (r *ObraRepo) query(query string, args ...any) ([]*entity.Obra, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Obra
	for rows.Next() {
		var o entity.Obra
		if err := rows.Scan(&o.ID, &o.Name, &o.Status, &o.Address, &o.ClienteID,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan obra: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
