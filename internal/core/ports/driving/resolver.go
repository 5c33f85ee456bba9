package driving

import "github.com/stellium-labs/stellium-cli/internal/core/domain"

// MarkupResolver inlines CSS custom properties in SVG markup.
//
// Resolution is a pure text transformation: it never fails, and
// resolving already-resolved markup is a no-op.
type MarkupResolver interface {
	// Resolve replaces every var(--name) reference with the declared
	// value, following declarations that reference other declarations.
	// References to undeclared properties become the fallback colour.
	Resolve(markup string) string

	// Properties returns the fully resolved declaration table of the
	// document, keyed by property name without the leading dashes.
	Properties(markup string) map[string]string

	// ApplyOverrides rewrites the values of declarations named in the
	// palette. Properties the document does not declare are not added.
	ApplyOverrides(markup string, overrides domain.Palette) string
}
