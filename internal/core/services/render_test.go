package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

// --- Mock implementations for render testing ---

// renderMockRaster implements driven.RasterConverter for testing.
type renderMockRaster struct {
	png       []byte
	err       error
	available bool
	gotSVG    []byte
	gotOpts   domain.RasterOptions
}

func (m *renderMockRaster) Convert(_ context.Context, svg []byte, opts domain.RasterOptions) ([]byte, error) {
	m.gotSVG = svg
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.png, nil
}

func (m *renderMockRaster) Available() bool { return m.available }

// renderMockChartStore implements driven.ChartStore for testing.
type renderMockChartStore struct {
	saved   []*domain.ChartRecord
	saveErr error
}

func (m *renderMockChartStore) SaveChart(_ context.Context, record *domain.ChartRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *renderMockChartStore) GetChart(_ context.Context, id string) (*domain.ChartRecord, error) {
	for _, record := range m.saved {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *renderMockChartStore) ListRecent(_ context.Context, limit int) ([]domain.ChartRecord, error) {
	records := make([]domain.ChartRecord, 0, len(m.saved))
	for i := len(m.saved) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, *m.saved[i])
	}
	return records, nil
}

func (m *renderMockChartStore) DeleteChart(_ context.Context, id string) error {
	for i, record := range m.saved {
		if record.ID == id {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// renderMockPalettes implements driven.PaletteProvider for testing.
type renderMockPalettes struct {
	palettes map[domain.Theme]domain.Palette
}

func (m *renderMockPalettes) Palette(theme domain.Theme) domain.Palette {
	return m.palettes[theme]
}

// testClock is the fixed render time used across pipeline tests.
var testClock = time.Date(2025, 6, 11, 15, 30, 45, 0, time.UTC)

func newTestRenderService(t *testing.T, raster driven.RasterConverter, charts driven.ChartStore, palettes driven.PaletteProvider) *RenderService {
	t.Helper()

	svc := NewRenderService(NewCSSResolver(nil), raster, charts, palettes,
		RenderConfig{DefaultDir: t.TempDir()}, nil)
	svc.now = func() time.Time { return testClock }
	svc.newID = func() string { return "chart-0001" }
	return svc
}

func TestRender(t *testing.T) {
	ctx := context.Background()

	t.Run("writes vector artifact with sanitised timestamped name", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		markup := `<svg><circle stroke="var(--ring)"/></svg>`

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup:  markup,
			Name:    "My Chart!!",
			EmitSVG: true,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ArtifactStatusSuccess, result.Status)
		assert.Regexp(t, regexp.MustCompile(`^my_chart___\d{8}_\d{6}\.svg$`), filepath.Base(result.SVGPath))

		// The vector artifact carries the markup as given, references included.
		content, err := os.ReadFile(result.SVGPath)
		require.NoError(t, err)
		assert.Equal(t, markup, string(content))
	})

	t.Run("uses requested directory over the default", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		dir := filepath.Join(t.TempDir(), "nested", "charts")

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup:    "<svg/>",
			Name:      "chart",
			OutputDir: dir,
			EmitSVG:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, dir, result.OutputDir)
		assert.Equal(t, dir, filepath.Dir(result.SVGPath))
	})

	t.Run("tolerates a pre-existing directory", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		dir := t.TempDir()

		_, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", OutputDir: dir, EmitSVG: true,
		})

		assert.NoError(t, err)
	})

	t.Run("fails when the directory cannot be created", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup:    "<svg/>",
			Name:      "chart",
			OutputDir: filepath.Join(blocker, "charts"),
			EmitSVG:   true,
		})

		require.Error(t, err)
		assert.ErrorContains(t, err, "create output directory")
		assert.Nil(t, result, "no partial result on fatal failure")
	})

	t.Run("fails when the vector artifact cannot be written", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		dir := t.TempDir()
		// Occupy the artifact path with a directory so the write fails.
		occupied := filepath.Join(dir, "chart_"+testClock.Format(timestampLayout)+".svg")
		require.NoError(t, os.MkdirAll(occupied, 0o755))

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", OutputDir: dir, EmitSVG: true,
		})

		require.Error(t, err)
		assert.ErrorContains(t, err, "write vector artifact")
		assert.Nil(t, result)
	})

	t.Run("converts resolved markup for the raster artifact", func(t *testing.T) {
		raster := &renderMockRaster{png: []byte("png-bytes"), available: true}
		svc := newTestRenderService(t, raster, nil, nil)
		markup := `<svg><style>--ring: crimson;</style><circle stroke="var(--ring)"/></svg>`

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup:  markup,
			Name:    "chart",
			EmitSVG: true,
			EmitPNG: true,
		})

		require.NoError(t, err)
		require.NotEmpty(t, result.PNGPath)

		// The converter must receive fully inlined properties.
		assert.NotContains(t, string(raster.gotSVG), "var(--ring)")
		assert.Contains(t, string(raster.gotSVG), "crimson")
		assert.Equal(t, domain.DefaultRasterOptions(), raster.gotOpts)

		content, err := os.ReadFile(result.PNGPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), content)

		// The vector artifact keeps its references regardless.
		svgContent, err := os.ReadFile(result.SVGPath)
		require.NoError(t, err)
		assert.Contains(t, string(svgContent), "var(--ring)")
	})

	t.Run("degrades when the converter fails", func(t *testing.T) {
		raster := &renderMockRaster{err: errors.New("rasteriser exploded"), available: true}
		svc := newTestRenderService(t, raster, nil, nil)

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true, EmitPNG: true,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ArtifactStatusSuccess, result.Status)
		assert.NotEmpty(t, result.SVGPath)
		assert.Empty(t, result.PNGPath)
		assert.Contains(t, result.Summary, "PNG: N/A")
	})

	t.Run("degrades when the converter reports unavailable", func(t *testing.T) {
		raster := &renderMockRaster{available: false}
		svc := newTestRenderService(t, raster, nil, nil)

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true, EmitPNG: true,
		})

		require.NoError(t, err)
		assert.Empty(t, result.PNGPath)
		assert.Nil(t, raster.gotSVG, "an unavailable converter should never be invoked")
	})

	t.Run("degrades when no converter is configured", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true, EmitPNG: true,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ArtifactStatusSuccess, result.Status)
		assert.Empty(t, result.PNGPath)
	})

	t.Run("fails when the raster artifact cannot be written", func(t *testing.T) {
		raster := &renderMockRaster{png: []byte("png-bytes"), available: true}
		svc := newTestRenderService(t, raster, nil, nil)
		dir := t.TempDir()
		occupied := filepath.Join(dir, "chart_"+testClock.Format(timestampLayout)+".png")
		require.NoError(t, os.MkdirAll(occupied, 0o755))

		_, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", OutputDir: dir, EmitPNG: true,
		})

		require.Error(t, err)
		assert.ErrorContains(t, err, "write raster artifact")
	})

	t.Run("summary lists every produced path", func(t *testing.T) {
		raster := &renderMockRaster{png: []byte("png-bytes"), available: true}
		svc := newTestRenderService(t, raster, nil, nil)

		result, err := svc.Render(ctx, domain.RenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true, EmitPNG: true,
		})

		require.NoError(t, err)
		assert.Contains(t, result.Summary, "SVG: "+result.SVGPath)
		assert.Contains(t, result.Summary, "PNG: "+result.PNGPath)
	})
}

func TestRenderChart(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the theme palette before writing", func(t *testing.T) {
		palettes := &renderMockPalettes{palettes: map[domain.Theme]domain.Palette{
			domain.ThemeDark: {"paper": "#111111"},
		}}
		svc := newTestRenderService(t, nil, nil, palettes)
		markup := `<svg><style>--paper: white;</style><rect fill="var(--paper)"/></svg>`

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup:  markup,
			Name:    "natal john",
			EmitSVG: true,
			Options: domain.RawChartOptions{Theme: "dark"},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ThemeDark, result.Options.Theme)

		content, err := os.ReadFile(result.Artifact.SVGPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "--paper: #111111;")
		assert.Contains(t, string(content), "var(--paper)", "vector output keeps references")
	})

	t.Run("reports coerced options as warnings", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup:  "<svg/>",
			Name:    "chart",
			EmitSVG: true,
			Options: domain.RawChartOptions{Theme: "neon"},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ThemeClassic, result.Options.Theme)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], `unknown theme "neon"`)
	})

	t.Run("fills unset options from configured defaults", func(t *testing.T) {
		svc := NewRenderService(NewCSSResolver(nil), nil, nil, nil, RenderConfig{
			DefaultDir:      t.TempDir(),
			DefaultTheme:    domain.ThemeDark,
			DefaultLanguage: domain.LanguageIT,
		}, nil)

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ThemeDark, result.Options.Theme)
		assert.Equal(t, domain.LanguageIT, result.Options.Language)
		assert.Empty(t, result.Warnings, "configured defaults are not coercions")
	})

	t.Run("records the render in the catalog", func(t *testing.T) {
		charts := &renderMockChartStore{}
		svc := newTestRenderService(t, nil, charts, nil)

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup: "<svg/>", Name: "natal john", EmitSVG: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "chart-0001", result.ChartID)

		require.Len(t, charts.saved, 1)
		record := charts.saved[0]
		assert.Equal(t, "natal john", record.Name)
		assert.Equal(t, domain.ThemeClassic, record.Theme)
		assert.Equal(t, result.Artifact.SVGPath, record.SVGPath)
		assert.Equal(t, testClock, record.CreatedAt)
	})

	t.Run("continues when catalog recording fails", func(t *testing.T) {
		charts := &renderMockChartStore{saveErr: errors.New("database locked")}
		svc := newTestRenderService(t, nil, charts, nil)

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true,
		})

		require.NoError(t, err)
		assert.Empty(t, result.ChartID)
		assert.NotEmpty(t, result.Artifact.SVGPath)
	})

	t.Run("warns when raster output degrades", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup: "<svg/>", Name: "chart", EmitSVG: true, EmitPNG: true,
		})

		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[len(result.Warnings)-1], "raster conversion unavailable")
	})

	t.Run("propagates pipeline failures", func(t *testing.T) {
		svc := newTestRenderService(t, nil, nil, nil)
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		result, err := svc.RenderChart(ctx, domain.ChartRenderRequest{
			Markup:    "<svg/>",
			Name:      "chart",
			OutputDir: filepath.Join(blocker, "charts"),
			EmitSVG:   true,
		})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "punctuation becomes underscores", input: "My Chart!!", want: "my_chart__"},
		{name: "uppercase is lowered", input: "Natal-John", want: "natal-john"},
		{name: "digits and hyphens survive", input: "transit_2025-06-11", want: "transit_2025-06-11"},
		{name: "path separators are neutralised", input: "a/b\\c", want: "a_b_c"},
		{name: "accented letters survive", input: "Joaquín", want: "joaquín"},
		{name: "empty name stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.input))
		})
	}
}

func TestDefaultChartDir(t *testing.T) {
	t.Run("is scoped to the user home", func(t *testing.T) {
		dir, err := DefaultChartDir()

		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))
		assert.Equal(t, filepath.Join(".stellium", "charts"), filepath.Join(filepath.Base(filepath.Dir(dir)), filepath.Base(dir)))
	})
}
