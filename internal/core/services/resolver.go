package services

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// Ensure CSSResolver implements the interface.
var _ driving.MarkupResolver = (*CSSResolver)(nil)

// fallbackColour replaces references to undeclared properties.
const fallbackColour = "#000000"

// Pass caps keep resolution total without explicit cycle detection.
// A genuine reference cycle stabilises as last-write-wins after the cap.
const (
	maxTablePasses    = 10
	maxDocumentPasses = 3
)

// Pre-compiled regular expressions for custom property syntax.
var (
	propertyDecl = regexp.MustCompile(`--([\w-]+):\s*([^;]+);`)
	propertyRef  = regexp.MustCompile(`var\(--([\w-]+)\)`)
)

// CSSResolver inlines CSS custom properties in SVG markup so raster
// backends without variable support can draw it. Resolution is a pure
// text transformation; a CSSResolver is safe for concurrent use.
type CSSResolver struct {
	log *zap.Logger
}

// NewCSSResolver creates a resolver. A nil logger disables diagnostics.
func NewCSSResolver(log *zap.Logger) *CSSResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &CSSResolver{log: log}
}

// Resolve replaces every var(--name) reference in the markup with the
// declared value of the property, following declarations whose values
// reference other declarations. References to undeclared properties
// become the fallback colour. Markup without declarations is returned
// unchanged, references included.
func (r *CSSResolver) Resolve(markup string) string {
	table := extractProperties(markup)
	if len(table) == 0 {
		return markup
	}
	r.resolveTable(table)

	for pass := 0; pass < maxDocumentPasses; pass++ {
		next := substituteRefs(markup, table)
		if next == markup {
			break
		}
		markup = next
	}
	return markup
}

// Properties returns the fully resolved declaration table of the
// document, keyed by property name without the leading dashes.
func (r *CSSResolver) Properties(markup string) map[string]string {
	table := extractProperties(markup)
	if len(table) == 0 {
		return table
	}
	r.resolveTable(table)
	return table
}

// ApplyOverrides rewrites the values of declarations named in the
// palette. Properties the document does not declare are not added, so
// documents untouched by a palette stay untouched.
func (r *CSSResolver) ApplyOverrides(markup string, overrides domain.Palette) string {
	if len(overrides) == 0 {
		return markup
	}
	return propertyDecl.ReplaceAllStringFunc(markup, func(decl string) string {
		name := propertyDecl.FindStringSubmatch(decl)[1]
		value, ok := overrides[name]
		if !ok {
			return decl
		}
		return "--" + name + ": " + value + ";"
	})
}

// extractProperties scans markup for --name: value; declarations.
// Later declarations overwrite earlier ones.
func extractProperties(markup string) map[string]string {
	table := make(map[string]string)
	for _, match := range propertyDecl.FindAllStringSubmatch(markup, -1) {
		table[match[1]] = strings.TrimSpace(match[2])
	}
	return table
}

// resolveTable rewrites table values in place until no value contains a
// reference to another declared property, or the pass cap is reached.
func (r *CSSResolver) resolveTable(table map[string]string) {
	for pass := 0; pass < maxTablePasses; pass++ {
		changed := false
		for name, value := range table {
			next := substituteRefs(value, table)
			if next != value {
				table[name] = next
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	if unresolved := referencingNames(table); len(unresolved) > 0 {
		r.log.Warn("custom properties did not stabilise, suspected reference cycle",
			zap.Strings("properties", unresolved))
	}
}

// substituteRefs replaces each var(--name) in s with the table value,
// or the fallback colour when the name is not declared.
func substituteRefs(s string, table map[string]string) string {
	return propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := propertyRef.FindStringSubmatch(ref)[1]
		if value, ok := table[name]; ok {
			return value
		}
		return fallbackColour
	})
}

// referencingNames lists properties whose value still carries a reference.
func referencingNames(table map[string]string) []string {
	var names []string
	for name, value := range table {
		if propertyRef.MatchString(value) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
