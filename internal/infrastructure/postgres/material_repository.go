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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do catálogo de materiais sobre PostgreSQL
// (usável com pool ou tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, name, unit, min_stock, supplier, unit_value, created_at, updated_at`

// Create persiste um material.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materiais (id, name, unit, min_stock, supplier, unit_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Unit, material.MinStock,
		material.Supplier, material.UnitValue, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// GetByID obtém um material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.get(id, false)
}

// GetForUpdate obtém o material bloqueando a linha (SELECT FOR UPDATE).
// Serializa emissões concorrentes sobre o mesmo material.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.get(id, true)
}

func (r *MaterialRepo) get(id string, forUpdate bool) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.Supplier,
		&m.UnitValue, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update atualiza os campos de catálogo de um material.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materiais
		SET name = $2, unit = $3, min_stock = $4, supplier = $5, unit_value = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Unit, material.MinStock,
		material.Supplier, material.UnitValue, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materiais por nome, paginado.
func (r *MaterialRepo) List(limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.Supplier,
			&m.UnitValue, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
