// Package null provides a raster converter that is never available.
// It stands in when raster output is disabled so the pipeline's
// degradation path is exercised uniformly.
package null

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.RasterConverter = (*Converter)(nil)

// Converter rejects every conversion with domain.ErrRasterUnavailable.
type Converter struct{}

// NewConverter creates the null converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Available always reports false.
func (c *Converter) Available() bool {
	return false
}

// Convert always returns domain.ErrRasterUnavailable.
func (c *Converter) Convert(_ context.Context, _ []byte, _ domain.RasterOptions) ([]byte, error) {
	return nil, domain.ErrRasterUnavailable
}
