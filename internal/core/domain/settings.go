package domain

// RasterBackend identifies the SVG rasteriser used for PNG output.
type RasterBackend string

// Available raster backends.
const (
	// RasterBackendRsvg shells out to rsvg-convert (librsvg).
	RasterBackendRsvg RasterBackend = "rsvg"

	// RasterBackendNone disables PNG output.
	RasterBackendNone RasterBackend = "none"
)

// IsValid returns true if the backend is recognised.
func (b RasterBackend) IsValid() bool {
	switch b {
	case RasterBackendRsvg, RasterBackendNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b RasterBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b RasterBackend) Description() string {
	switch b {
	case RasterBackendRsvg:
		return "rsvg-convert (librsvg)"
	case RasterBackendNone:
		return "Disabled (SVG output only)"
	default:
		return unknownDescription
	}
}

// AllRasterBackends returns all available raster backends.
func AllRasterBackends() []RasterBackend {
	return []RasterBackend{RasterBackendRsvg, RasterBackendNone}
}

// OutputSettings holds artifact output configuration.
type OutputSettings struct {
	// Directory is where rendered charts are written. Empty selects
	// the per-user default chart directory.
	Directory string

	// SVG controls whether vector output is written when a request
	// does not say otherwise.
	SVG bool

	// PNG controls whether raster output is written when a request
	// does not say otherwise.
	PNG bool
}

// RasterSettings holds raster conversion configuration.
type RasterSettings struct {
	// Backend selects the rasteriser.
	Backend RasterBackend

	// Width is the output bitmap width in pixels.
	Width int

	// Scale is the zoom factor applied before rasterising.
	Scale float64

	// Background fills the canvas behind transparent regions.
	Background string
}

// Options returns the raster options carried by these settings, with
// defaults filled in for unset values.
func (r RasterSettings) Options() RasterOptions {
	opts := DefaultRasterOptions()
	if r.Width > 0 {
		opts.Width = r.Width
	}
	if r.Scale > 0 {
		opts.Scale = r.Scale
	}
	if r.Background != "" {
		opts.Background = r.Background
	}
	return opts
}

// ChartSettings holds the default cosmetic options applied when a
// request leaves them unset.
type ChartSettings struct {
	// Theme is the default chart theme.
	Theme Theme

	// Language is the default chart language.
	Language Language
}

// CatalogSettings holds chart catalog configuration.
type CatalogSettings struct {
	// Enabled controls whether renders are recorded.
	Enabled bool

	// Path is the directory holding the catalog database. Empty
	// selects the default location under the config directory.
	Path string
}

// PaletteSettings holds theme palette configuration.
type PaletteSettings struct {
	// Path is an optional YAML file overriding the built-in palettes.
	Path string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds artifact output settings.
	Output OutputSettings

	// Raster holds raster conversion settings.
	Raster RasterSettings

	// Chart holds default cosmetic options.
	Chart ChartSettings

	// Catalog holds chart catalog settings.
	Catalog CatalogSettings

	// Palette holds theme palette settings.
	Palette PaletteSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Both artifact formats are on; raster conversion degrades gracefully
// when rsvg-convert is not installed.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			SVG: true,
			PNG: true,
		},
		Raster: RasterSettings{
			Backend:    RasterBackendRsvg,
			Width:      1600,
			Scale:      2.0,
			Background: "white",
		},
		Chart: ChartSettings{
			Theme:    DefaultTheme,
			Language: DefaultLanguage,
		},
		Catalog: CatalogSettings{
			Enabled: true,
		},
	}
}
