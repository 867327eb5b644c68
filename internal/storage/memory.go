package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/insight-ec/opportunity-board/internal/models"
)

// Memory is an OpportunityStore backed by a plain map. It exists for tests
// and for running the server without a database (-in-memory); records are
// gone on restart.
type Memory struct {
	mu   sync.RWMutex
	opps map[uuid.UUID]models.Opportunity
}

func NewMemory() *Memory {
	return &Memory{opps: make(map[uuid.UUID]models.Opportunity)}
}

func (m *Memory) List(ctx context.Context) ([]models.Opportunity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Opportunity, 0, len(m.opps))
	for _, o := range m.opps {
		out = append(out, o)
	}
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.opps[key]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *Memory) Create(ctx context.Context, in models.InsertOpportunity) (*models.Opportunity, error) {
	if bad := in.Validate(); len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	o := in.Record(uuid.New())

	m.mu.Lock()
	m.opps[o.ID] = o
	m.mu.Unlock()

	return &o, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch models.UpdateOpportunity) (*models.Opportunity, error) {
	if bad := patch.Validate(); len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	key, err := uuid.Parse(id)
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.opps[key]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	patch.Apply(&o)
	m.opps[key] = o
	return &o, nil
}

func (m *Memory) Delete(ctx context.Context, id string) (bool, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.opps[key]; !ok {
		return false, nil
	}
	delete(m.opps, key)
	return true, nil
}
