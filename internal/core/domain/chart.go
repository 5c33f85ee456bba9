package domain

import "time"

// ArtifactStatusSuccess is the status carried by every ArtifactResult.
// Failures surface as errors, never as partial results.
const ArtifactStatusSuccess = "success"

// RenderRequest describes a single artifact pipeline run.
type RenderRequest struct {
	// Markup is the SVG document text to persist.
	Markup string

	// Name is the logical chart name. It is sanitised for the
	// filesystem before use.
	Name string

	// OutputDir is the target directory. Empty selects the configured
	// default directory.
	OutputDir string

	// EmitSVG controls whether the vector artifact is written.
	EmitSVG bool

	// EmitPNG controls whether the raster artifact is written.
	EmitPNG bool
}

// ArtifactResult reports where a pipeline run wrote each artifact.
// Produced once per RenderRequest and returned to the caller; the
// pipeline retains nothing.
type ArtifactResult struct {
	// Status is ArtifactStatusSuccess. Fatal failures are returned as
	// errors instead of results.
	Status string

	// OutputDir is the directory the artifacts were written to.
	OutputDir string

	// SVGPath is the vector file path; empty when no SVG was written.
	SVGPath string

	// PNGPath is the raster file path; empty when no PNG was written,
	// including when raster conversion degraded gracefully.
	PNGPath string

	// Summary is a one-line account of the produced paths, with "N/A"
	// standing in for formats that were not produced.
	Summary string
}

// RasterOptions control SVG to PNG conversion.
type RasterOptions struct {
	// Width is the output bitmap width in pixels. Height follows the
	// document's aspect ratio.
	Width int

	// Scale is the zoom factor applied before rasterising.
	Scale float64

	// Background fills the canvas behind transparent regions.
	Background string
}

// DefaultRasterOptions returns the conversion defaults: 1600px wide,
// doubled for DPI, on a white background.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Width:      1600,
		Scale:      2.0,
		Background: "white",
	}
}

// ChartRenderRequest is the orchestration envelope around RenderRequest:
// markup plus raw cosmetic options as supplied by a tool call or CLI run.
type ChartRenderRequest struct {
	// Markup is the SVG document text.
	Markup string

	// Name is the logical chart name.
	Name string

	// OutputDir overrides the configured output directory when set.
	OutputDir string

	// EmitSVG and EmitPNG select the artifact formats.
	EmitSVG bool
	EmitPNG bool

	// Options carries the raw cosmetic options. Invalid values are
	// coerced to defaults, never rejected.
	Options RawChartOptions
}

// ChartRenderResult is the outcome of a chart render: the artifact
// result plus the canonical options, the catalog ID when cataloguing is
// enabled, and any coercion warnings.
type ChartRenderResult struct {
	Artifact ArtifactResult

	// ChartID is the catalog identifier; empty when the catalog is
	// disabled or recording failed.
	ChartID string

	// Options are the canonical options after coercion.
	Options ChartOptions

	// Warnings lists every option substitution and degradation that
	// occurred. A non-empty list never implies failure.
	Warnings []string
}

// ChartRecord is a catalogued render.
type ChartRecord struct {
	// ID is the catalog identifier (UUID).
	ID string

	// Name is the logical chart name as supplied by the caller.
	Name string

	// Theme, Language and Style are the canonical options the chart
	// was rendered with.
	Theme    Theme
	Language Language
	Style    ChartStyle

	// OutputDir, SVGPath and PNGPath mirror the ArtifactResult.
	OutputDir string
	SVGPath   string
	PNGPath   string

	// CreatedAt is when the render completed.
	CreatedAt time.Time
}

// Palette maps custom property names (without the leading dashes) to
// replacement values. Applying a palette rewrites matching property
// declarations in a document; properties the document does not declare
// are left alone.
type Palette map[string]string
