package driving

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

// CatalogService exposes the render history.
type CatalogService interface {
	// Recent returns up to limit catalogued renders, newest first.
	// Returns domain.ErrCatalogDisabled when no catalog is configured.
	Recent(ctx context.Context, limit int) ([]domain.ChartRecord, error)

	// Get retrieves a catalogued render by ID.
	// Returns domain.ErrNotFound when no such record exists and
	// domain.ErrCatalogDisabled when no catalog is configured.
	Get(ctx context.Context, id string) (*domain.ChartRecord, error)

	// Delete removes a record from the catalog. Artifact files are
	// left on disk.
	Delete(ctx context.Context, id string) error
}
