// Package palette supplies the custom-property palettes behind each theme.
// Built-in palettes are embedded; a YAML file can override them per theme.
package palette

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

//go:embed palettes.yaml
var builtinYAML []byte

// Provider implements driven.PaletteProvider backed by the embedded
// palettes plus optional per-theme overrides loaded from a YAML file.
type Provider struct {
	builtin   map[domain.Theme]domain.Palette
	overrides map[domain.Theme]domain.Palette
	log       *zap.Logger
}

var _ driven.PaletteProvider = (*Provider)(nil)

// NewProvider creates a Provider from the embedded palettes.
func NewProvider(log *zap.Logger) (*Provider, error) {
	if log == nil {
		log = zap.NewNop()
	}

	builtin, err := parsePalettes(builtinYAML, log)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in palettes: %w", err)
	}

	return &Provider{
		builtin:   builtin,
		overrides: make(map[domain.Theme]domain.Palette),
		log:       log,
	}, nil
}

// LoadFile merges per-theme palette overrides from a YAML file.
// Later loads stack on earlier ones.
func (p *Provider) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading palette file: %w", err)
	}

	loaded, err := parsePalettes(data, p.log)
	if err != nil {
		return fmt.Errorf("parsing palette file %s: %w", path, err)
	}

	for theme, palette := range loaded {
		merged := p.overrides[theme]
		if merged == nil {
			merged = make(domain.Palette, len(palette))
		}
		for name, value := range palette {
			merged[name] = value
		}
		p.overrides[theme] = merged
	}

	return nil
}

// Palette returns the property overrides for the given theme: the
// built-in palette with any file overrides layered on top. The result
// is a copy the caller may mutate. Unknown themes return nil.
func (p *Provider) Palette(theme domain.Theme) domain.Palette {
	builtin := p.builtin[theme]
	overrides := p.overrides[theme]
	if builtin == nil && overrides == nil {
		return nil
	}

	merged := make(domain.Palette, len(builtin)+len(overrides))
	for name, value := range builtin {
		merged[name] = value
	}
	for name, value := range overrides {
		merged[name] = value
	}
	return merged
}

// parsePalettes decodes a theme-to-properties YAML mapping. Entries for
// unrecognised themes are skipped with a warning rather than rejected.
func parsePalettes(data []byte, log *zap.Logger) (map[domain.Theme]domain.Palette, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	palettes := make(map[domain.Theme]domain.Palette, len(raw))
	for name, properties := range raw {
		theme := domain.Theme(name)
		if !theme.IsValid() {
			log.Warn("skipping palette for unknown theme", zap.String("theme", name))
			continue
		}

		palette := make(domain.Palette, len(properties))
		for property, value := range properties {
			palette[property] = value
		}
		palettes[theme] = palette
	}

	return palettes, nil
}
