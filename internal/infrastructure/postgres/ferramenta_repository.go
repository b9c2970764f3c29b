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

var _ repository.FerramentaRepository = (*FerramentaRepo)(nil)

// FerramentaRepo implementação do catálogo de ferramentas sobre PostgreSQL
// (usável com pool ou tx). Inclui o ponteiro desnormalizado obra_atual_id.
type FerramentaRepo struct {
	q Querier
}

// NewFerramentaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFerramentaRepository(q Querier) *FerramentaRepo {
	return &FerramentaRepo{q: q}
}

const ferramentaColumns = `id, name, code, status, unit_value, min_stock, obra_atual_id, created_at, updated_at`

// Create persiste uma ferramenta. Code é único no catálogo.
func (r *FerramentaRepo) Create(ferramenta *entity.Ferramenta) error {
	query := `
		INSERT INTO ferramentas (id, name, code, status, unit_value, min_stock, obra_atual_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ferramenta.ID, ferramenta.Name, ferramenta.Code, ferramenta.Status,
		ferramenta.UnitValue, ferramenta.MinStock, ferramenta.ObraAtualID,
		ferramenta.CreatedAt, ferramenta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create ferramenta: %w", err)
	}
	return nil
}

// GetByID obtém uma ferramenta por ID.
func (r *FerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	return r.get(id, false)
}

// GetForUpdate obtém a ferramenta bloqueando a linha (SELECT FOR UPDATE).
// Serializa emissões concorrentes sobre a mesma ferramenta.
func (r *FerramentaRepo) GetForUpdate(id string) (*entity.Ferramenta, error) {
	return r.get(id, true)
}

func (r *FerramentaRepo) get(id string, forUpdate bool) (*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColumns + ` FROM ferramentas WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var f entity.Ferramenta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.Code, &f.Status, &f.UnitValue,
		&f.MinStock, &f.ObraAtualID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ferramenta: %w", err)
	}
	return &f, nil
}

// Update atualiza os campos de catálogo de uma ferramenta.
func (r *FerramentaRepo) Update(ferramenta *entity.Ferramenta) error {
	query := `
		UPDATE ferramentas
		SET name = $2, code = $3, status = $4, unit_value = $5, min_stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ferramenta.ID, ferramenta.Name, ferramenta.Code, ferramenta.Status,
		ferramenta.UnitValue, ferramenta.MinStock, ferramenta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ferramenta: %w", err)
	}
	return nil
}

// UpdateObraAtual grava o ponteiro de obra atual (nil = almoxarifado central).
// Sempre chamado na mesma transação do append da movimentação correspondente.
func (r *FerramentaRepo) UpdateObraAtual(id string, obraID *string) error {
	query := `UPDATE ferramentas SET obra_atual_id = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, obraID)
	if err != nil {
		return fmt.Errorf("update obra atual: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ferramentas por nome, paginado.
func (r *FerramentaRepo) List(limit, offset int) ([]*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColumns + ` FROM ferramentas ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ferramentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ferramenta
	for rows.Next() {
		var f entity.Ferramenta
		if err := rows.Scan(&f.ID, &f.Name, &f.Code, &f.Status, &f.UnitValue,
			&f.MinStock, &f.ObraAtualID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ferramenta: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
