package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

// Ensure ChartStore implements the interface.
var _ driven.ChartStore = (*ChartStore)(nil)

// ChartStore is an in-memory implementation of driven.ChartStore.
type ChartStore struct {
	mu     sync.RWMutex
	charts map[string]domain.ChartRecord
}

// NewChartStore creates a new in-memory chart store.
func NewChartStore() *ChartStore {
	return &ChartStore{
		charts: make(map[string]domain.ChartRecord),
	}
}

// SaveChart records a rendered chart.
func (s *ChartStore) SaveChart(_ context.Context, record *domain.ChartRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts[record.ID] = *record
	return nil
}

// GetChart retrieves a record by ID.
func (s *ChartStore) GetChart(_ context.Context, id string) (*domain.ChartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.charts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// ListRecent returns up to limit records, newest first.
func (s *ChartStore) ListRecent(_ context.Context, limit int) ([]domain.ChartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ChartRecord, 0, len(s.charts))
	for _, record := range s.charts {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// DeleteChart removes a record.
func (s *ChartStore) DeleteChart(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.charts, id)
	return nil
}
