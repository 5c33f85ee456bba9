package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

// timestampLayout disambiguates repeated renders of the same name.
// Second resolution; two renders of one name within a second collide.
const timestampLayout = "20060102_150405"

// artifactAbsent marks formats that were not produced in summaries.
const artifactAbsent = "N/A"

// RenderConfig carries the defaults a render falls back to when the
// request leaves them unset. The directory is threaded through here
// explicitly so the pipeline never consults ambient state per call.
type RenderConfig struct {
	// DefaultDir receives artifacts when a request names no directory.
	DefaultDir string

	// Raster holds the conversion options passed to the converter.
	Raster domain.RasterOptions

	// DefaultTheme and DefaultLanguage fill unset cosmetic options.
	DefaultTheme    domain.Theme
	DefaultLanguage domain.Language
}

// RenderService is the artifact pipeline: it persists chart markup as
// vector and raster files and records renders in the catalog.
type RenderService struct {
	resolver driving.MarkupResolver
	raster   driven.RasterConverter
	charts   driven.ChartStore
	palettes driven.PaletteProvider
	cfg      RenderConfig
	log      *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRenderService creates the pipeline. The raster converter, chart
// store and palette provider may each be nil; the corresponding step is
// skipped. When cfg names no default directory the per-user chart
// directory is resolved once, here, not per render.
func NewRenderService(
	resolver driving.MarkupResolver,
	raster driven.RasterConverter,
	charts driven.ChartStore,
	palettes driven.PaletteProvider,
	cfg RenderConfig,
	log *zap.Logger,
) *RenderService {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.DefaultDir == "" {
		if dir, err := DefaultChartDir(); err == nil {
			cfg.DefaultDir = dir
		}
	}
	defaults := domain.DefaultRasterOptions()
	if cfg.Raster.Width <= 0 {
		cfg.Raster.Width = defaults.Width
	}
	if cfg.Raster.Scale <= 0 {
		cfg.Raster.Scale = defaults.Scale
	}
	if cfg.Raster.Background == "" {
		cfg.Raster.Background = defaults.Background
	}

	return &RenderService{
		resolver: resolver,
		raster:   raster,
		charts:   charts,
		palettes: palettes,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// DefaultChartDir returns the per-user chart directory.
func DefaultChartDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".stellium", "charts"), nil
}

// Render writes the requested artifacts for a single chart. The markup
// is written as given for the vector artifact; custom properties are
// resolved only for raster conversion, which degrades to an absent
// raster path when the converter is missing or fails. Directory and
// file write failures are fatal.
func (s *RenderService) Render(ctx context.Context, req domain.RenderRequest) (*domain.ArtifactResult, error) {
	dir := req.OutputDir
	if dir == "" {
		dir = s.cfg.DefaultDir
	}
	if dir == "" {
		return nil, fmt.Errorf("no output directory configured: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	base := sanitizeName(req.Name) + "_" + s.now().Format(timestampLayout)
	result := &domain.ArtifactResult{
		Status:    domain.ArtifactStatusSuccess,
		OutputDir: dir,
	}

	if req.EmitSVG {
		path := filepath.Join(dir, base+".svg")
		if err := os.WriteFile(path, []byte(req.Markup), 0o644); err != nil {
			return nil, fmt.Errorf("write vector artifact: %w", err)
		}
		result.SVGPath = path
		s.log.Debug("wrote vector artifact", zap.String("path", path))
	}

	if req.EmitPNG {
		png, err := s.rasterise(ctx, req.Markup)
		if err != nil {
			s.log.Warn("raster conversion skipped", zap.Error(err))
		} else {
			path := filepath.Join(dir, base+".png")
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return nil, fmt.Errorf("write raster artifact: %w", err)
			}
			result.PNGPath = path
			s.log.Debug("wrote raster artifact", zap.String("path", path))
		}
	}

	result.Summary = fmt.Sprintf("Chart saved. SVG: %s, PNG: %s",
		orAbsent(result.SVGPath), orAbsent(result.PNGPath))
	return result, nil
}

// RenderChart runs a full chart render: option coercion, theme palette
// application, the artifact pipeline, then catalog recording. Option
// substitutions and raster degradation surface as warnings on the
// result; only pipeline failures surface as errors.
func (s *RenderService) RenderChart(ctx context.Context, req domain.ChartRenderRequest) (*domain.ChartRenderResult, error) {
	raw := req.Options
	if raw.Theme == "" {
		raw.Theme = string(s.cfg.DefaultTheme)
	}
	if raw.Language == "" {
		raw.Language = string(s.cfg.DefaultLanguage)
	}
	opts, warnings := domain.ParseChartOptions(raw)

	markup := req.Markup
	if s.palettes != nil && s.resolver != nil {
		if palette := s.palettes.Palette(opts.Theme); len(palette) > 0 {
			markup = s.resolver.ApplyOverrides(markup, palette)
		}
	}

	artifact, err := s.Render(ctx, domain.RenderRequest{
		Markup:    markup,
		Name:      req.Name,
		OutputDir: req.OutputDir,
		EmitSVG:   req.EmitSVG,
		EmitPNG:   req.EmitPNG,
	})
	if err != nil {
		return nil, err
	}
	if req.EmitPNG && artifact.PNGPath == "" {
		warnings = append(warnings, "raster conversion unavailable, no PNG produced")
	}

	result := &domain.ChartRenderResult{
		Artifact: *artifact,
		Options:  opts,
		Warnings: warnings,
	}

	if s.charts != nil {
		record := &domain.ChartRecord{
			ID:        s.newID(),
			Name:      req.Name,
			Theme:     opts.Theme,
			Language:  opts.Language,
			Style:     opts.ChartStyle,
			OutputDir: artifact.OutputDir,
			SVGPath:   artifact.SVGPath,
			PNGPath:   artifact.PNGPath,
			CreatedAt: s.now(),
		}
		if err := s.charts.SaveChart(ctx, record); err != nil {
			s.log.Warn("failed to catalog chart", zap.String("name", req.Name), zap.Error(err))
		} else {
			result.ChartID = record.ID
		}
	}

	return result, nil
}

// rasterise resolves custom properties and converts the markup to PNG.
// A nil or absent converter reports domain.ErrRasterUnavailable.
func (s *RenderService) rasterise(ctx context.Context, markup string) ([]byte, error) {
	if s.raster == nil || !s.raster.Available() {
		return nil, domain.ErrRasterUnavailable
	}
	if s.resolver != nil {
		markup = s.resolver.Resolve(markup)
	}
	return s.raster.Convert(ctx, []byte(markup), s.cfg.Raster)
}

// sanitizeName lowercases the logical name and replaces every character
// that is not a letter, digit, underscore or hyphen with an underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func orAbsent(path string) string {
	if path == "" {
		return artifactAbsent
	}
	return path
}
