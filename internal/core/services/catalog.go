package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// defaultRecentLimit bounds history listings when the caller gives none.
const defaultRecentLimit = 20

// CatalogService exposes the render history backed by a chart store.
// A nil store reports the catalog as disabled rather than failing.
type CatalogService struct {
	charts driven.ChartStore
	log    *zap.Logger
}

// NewCatalogService creates a catalog service. The store may be nil
// when cataloguing is switched off.
func NewCatalogService(charts driven.ChartStore, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{charts: charts, log: log}
}

// Recent returns up to limit catalogued renders, newest first.
func (s *CatalogService) Recent(ctx context.Context, limit int) ([]domain.ChartRecord, error) {
	if s.charts == nil {
		return nil, domain.ErrCatalogDisabled
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.charts.ListRecent(ctx, limit)
}

// Get retrieves a catalogued render by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.ChartRecord, error) {
	if s.charts == nil {
		return nil, domain.ErrCatalogDisabled
	}
	if id == "" {
		return nil, fmt.Errorf("chart id is required: %w", domain.ErrInvalidInput)
	}
	return s.charts.GetChart(ctx, id)
}

// Delete removes a record from the catalog. Artifact files on disk are
// not touched.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if s.charts == nil {
		return domain.ErrCatalogDisabled
	}
	if id == "" {
		return fmt.Errorf("chart id is required: %w", domain.ErrInvalidInput)
	}
	if err := s.charts.DeleteChart(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed chart from catalog", zap.String("id", id))
	return nil
}
