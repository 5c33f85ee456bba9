package driven

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

// ChartStore persists the chart catalog.
type ChartStore interface {
	// SaveChart records a rendered chart.
	SaveChart(ctx context.Context, record *domain.ChartRecord) error

	// GetChart retrieves a record by ID.
	// Returns domain.ErrNotFound when no such record exists.
	GetChart(ctx context.Context, id string) (*domain.ChartRecord, error)

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ChartRecord, error)

	// DeleteChart removes a record. Artifact files are left on disk.
	DeleteChart(ctx context.Context, id string) error
}
