// Package memory implementa as portas de persistência em memória. Usado como
// test double injetável e para rodar a API localmente sem PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// Store guarda os catálogos e o livro de movimentações em memória, protegidos
// por um mutex único. Cada porta de repositório é exposta como uma view sobre
// o mesmo Store; o TxRunner serializa as "transações" pelo mutex (não há
// rollback parcial — os callbacks dos casos de uso só gravam após validar).
type Store struct {
	mu            sync.Mutex
	movimentacoes []*entity.Movimentacao
	materiais     map[string]*entity.Material
	ferramentas   map[string]*entity.Ferramenta
	obras         map[string]*entity.Obra
}

// NewStore cria o store vazio.
func NewStore() *Store {
	return &Store{
		materiais:   make(map[string]*entity.Material),
		ferramentas: make(map[string]*entity.Ferramenta),
		obras:       make(map[string]*entity.Obra),
	}
}

// Movimentacoes devolve a view do livro de movimentações.
func (s *Store) Movimentacoes() repository.MovimentacaoRepository { return (*movStore)(s) }

// Materiais devolve a view do catálogo de materiais.
func (s *Store) Materiais() repository.MaterialRepository { return (*materialStore)(s) }

// Ferramentas devolve a view do catálogo de ferramentas.
func (s *Store) Ferramentas() repository.FerramentaRepository { return (*ferramentaStore)(s) }

// Obras devolve a view do catálogo de obras.
func (s *Store) Obras() repository.ObraRepository { return (*obraStore)(s) }

var _ almoxarifado.TxRunner = (*Store)(nil)

// Run executa fn com as views do próprio store.
func (s *Store) Run(_ context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	materialRepo repository.MaterialRepository,
	ferramentaRepo repository.FerramentaRepository,
	obraRepo repository.ObraRepository,
) error) error {
	return fn(s.Movimentacoes(), s.Materiais(), s.Ferramentas(), s.Obras())
}

// ── Livro de movimentações ──────────────────────────────────────────────────

type movStore Store

var _ repository.MovimentacaoRepository = (*movStore)(nil)

func (s *movStore) Create(mov *entity.Movimentacao) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	cp := *mov
	s.movimentacoes = append(s.movimentacoes, &cp)
	return nil
}

func (s *movStore) GetByID(id string) (*entity.Movimentacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movimentacoes {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *movStore) List(filter repository.MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error) {
	all, err := s.ListAll(filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, limit, offset), nil
}

func (s *movStore) ListAll(filter repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Movimentacao
	for _, m := range s.movimentacoes {
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.ItemType != "" && m.ItemType != filter.ItemType {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.ObraID != "" && (m.ObraID == nil || *m.ObraID != filter.ObraID) {
			continue
		}
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (s *movStore) ListByItem(itemID string) ([]*entity.Movimentacao, error) {
	return s.ListAll(repository.MovimentacaoFilter{ItemID: itemID})
}

// ── Catálogo de materiais ───────────────────────────────────────────────────

type materialStore Store

var _ repository.MaterialRepository = (*materialStore)(nil)

func (s *materialStore) Create(material *entity.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materiais[material.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *material
	s.materiais[material.ID] = &cp
	return nil
}

func (s *materialStore) GetByID(id string) (*entity.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.materiais[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// GetForUpdate idem GetByID; o mutex do Run já serializa.
func (s *materialStore) GetForUpdate(id string) (*entity.Material, error) {
	return s.GetByID(id)
}

func (s *materialStore) Update(material *entity.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materiais[material.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *material
	s.materiais[material.ID] = &cp
	return nil
}

func (s *materialStore) List(limit, offset int) ([]*entity.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Material, 0, len(s.materiais))
	for _, m := range s.materiais {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

// ── Catálogo de ferramentas ─────────────────────────────────────────────────

type ferramentaStore Store

var _ repository.FerramentaRepository = (*ferramentaStore)(nil)

func (s *ferramentaStore) Create(ferramenta *entity.Ferramenta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.ferramentas {
		if f.Code == ferramenta.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *ferramenta
	s.ferramentas[ferramenta.ID] = &cp
	return nil
}

func (s *ferramentaStore) GetByID(id string) (*entity.Ferramenta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.ferramentas[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

// GetForUpdate idem GetByID; o mutex do Run já serializa.
func (s *ferramentaStore) GetForUpdate(id string) (*entity.Ferramenta, error) {
	return s.GetByID(id)
}

func (s *ferramentaStore) Update(ferramenta *entity.Ferramenta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ferramentas[ferramenta.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ferramenta
	s.ferramentas[ferramenta.ID] = &cp
	return nil
}

func (s *ferramentaStore) UpdateObraAtual(id string, obraID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.ferramentas[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.ObraAtualID = obraID
	return nil
}

func (s *ferramentaStore) List(limit, offset int) ([]*entity.Ferramenta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Ferramenta, 0, len(s.ferramentas))
	for _, f := range s.ferramentas {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

// ── Catálogo de obras ───────────────────────────────────────────────────────

type obraStore Store

var _ repository.ObraRepository = (*obraStore)(nil)

func (s *obraStore) Create(obra *entity.Obra) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.obras[obra.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *obra
	s.obras[obra.ID] = &cp
	return nil
}

func (s *obraStore) GetByID(id string) (*entity.Obra, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.obras[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (s *obraStore) UpdateStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.obras[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (s *obraStore) List(limit, offset int) ([]*entity.Obra, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Obra, 0, len(s.obras))
	for _, o := range s.obras {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (s *obraStore) ListAtivas() ([]*entity.Obra, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Obra
	for _, o := range s.obras {
		if o.Status == entity.ObraStatusAtiva {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		return list[:limit]
	}
	return list
}
