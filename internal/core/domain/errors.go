package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrRasterUnavailable indicates no raster converter is installed or
	// configured. PNG output is disabled; vector output still works.
	ErrRasterUnavailable = errors.New("raster converter unavailable")

	// ErrRasterFailed indicates the raster converter ran but could not
	// produce an image from the given markup.
	ErrRasterFailed = errors.New("raster conversion failed")

	// ErrCatalogDisabled indicates the chart catalog is not configured.
	// Render history and chart resources are disabled.
	ErrCatalogDisabled = errors.New("chart catalog disabled")
)
