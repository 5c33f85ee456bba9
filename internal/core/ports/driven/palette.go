package driven

import "github.com/stellium-labs/stellium-cli/internal/core/domain"

// PaletteProvider supplies the custom-property palette for a theme.
type PaletteProvider interface {
	// Palette returns the property overrides for the given theme.
	// A nil or empty palette means the theme leaves documents as-is.
	Palette(theme domain.Theme) domain.Palette
}
