package driven

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

// RasterConverter turns SVG markup into PNG bytes.
//
// The converter is a black box: implementations may shell out to an
// external tool or link a library. Callers must treat a conversion
// failure and an absent converter the same way, by omitting raster
// output.
type RasterConverter interface {
	// Convert rasterises the given SVG document. Returns
	// domain.ErrRasterUnavailable when no converter is installed and
	// domain.ErrRasterFailed when conversion itself fails.
	Convert(ctx context.Context, svg []byte, opts domain.RasterOptions) ([]byte, error)

	// Available reports whether conversion can be attempted at all.
	Available() bool
}
