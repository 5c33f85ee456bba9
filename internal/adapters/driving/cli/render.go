package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

var (
	renderName        string
	renderOut         string
	renderFormats     string
	renderTheme       string
	renderLanguage    string
	renderHouseSystem string
	renderZodiac      string
	renderSidereal    string
	renderPerspective string
	renderStyle       string
	renderJSON        bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a chart document to artifacts",
	Long: `Renders an SVG chart document to the configured output directory.

Reads the document from the given file, or from stdin when the file is
"-". The vector artifact is written as given; the raster artifact has
CSS custom properties inlined first. Unknown option values are replaced
with defaults and reported as warnings, never errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderName, "name", "", "chart name (defaults to the file name)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory (defaults to the configured directory)")
	renderCmd.Flags().StringVar(&renderFormats, "formats", "", "comma-separated artifact formats: svg,png")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "chart theme")
	renderCmd.Flags().StringVar(&renderLanguage, "language", "", "chart language code")
	renderCmd.Flags().StringVar(&renderHouseSystem, "house-system", "", "house system identifier letter")
	renderCmd.Flags().StringVar(&renderZodiac, "zodiac", "", "zodiac type (Tropic or Sidereal)")
	renderCmd.Flags().StringVar(&renderSidereal, "sidereal-mode", "", "ayanamsha for sidereal charts")
	renderCmd.Flags().StringVar(&renderPerspective, "perspective", "", "observational perspective")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "chart style (full, wheel_only, aspect_grid)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	markup, name, err := readChartDocument(cmd, args[0])
	if err != nil {
		return err
	}
	if renderName != "" {
		name = renderName
	}

	emitSVG, emitPNG, err := selectFormats(renderFormats)
	if err != nil {
		return err
	}

	ctx := context.Background()
	req := domain.ChartRenderRequest{
		Markup:    markup,
		Name:      name,
		OutputDir: renderOut,
		EmitSVG:   emitSVG,
		EmitPNG:   emitPNG,
		Options: domain.RawChartOptions{
			Theme:        renderTheme,
			Language:     renderLanguage,
			HouseSystem:  renderHouseSystem,
			ZodiacType:   renderZodiac,
			SiderealMode: renderSidereal,
			Perspective:  renderPerspective,
			ChartStyle:   renderStyle,
		},
	}

	result, err := renderService.RenderChart(ctx, req)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if renderJSON {
		return outputRenderJSON(cmd, result)
	}

	return outputRenderSummary(cmd, result)
}

// readChartDocument reads markup from path, or stdin when path is "-".
// The second return is the chart name derived from the file name.
func readChartDocument(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "chart", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return string(data), name, nil
}

// selectFormats maps the --formats flag to emit flags. An empty flag
// selects the configured defaults.
func selectFormats(formats string) (bool, bool, error) {
	if formats == "" {
		if settingsService != nil {
			if settings, err := settingsService.Get(); err == nil {
				return settings.Output.SVG, settings.Output.PNG, nil
			}
		}
		return true, true, nil
	}

	var emitSVG, emitPNG bool
	for _, f := range strings.Split(formats, ",") {
		switch strings.TrimSpace(f) {
		case "svg":
			emitSVG = true
		case "png":
			emitPNG = true
		case "":
		default:
			return false, false, fmt.Errorf("unknown format %q (valid: svg, png)", strings.TrimSpace(f))
		}
	}

	if !emitSVG && !emitPNG {
		return false, false, errors.New("no artifact formats selected")
	}
	return emitSVG, emitPNG, nil
}

func outputRenderJSON(cmd *cobra.Command, result *domain.ChartRenderResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRenderSummary(cmd *cobra.Command, result *domain.ChartRenderResult) error {
	for _, warning := range result.Warnings {
		cmd.Printf("Warning: %s\n", warning)
	}

	cmd.Printf("Rendered chart to %s\n\n", result.Artifact.OutputDir)
	if result.Artifact.SVGPath != "" {
		cmd.Printf("  SVG: %s\n", result.Artifact.SVGPath)
	}
	if result.Artifact.PNGPath != "" {
		cmd.Printf("  PNG: %s\n", result.Artifact.PNGPath)
	}
	if result.ChartID != "" {
		cmd.Printf("\nCatalogued as %s\n", result.ChartID)
	}

	return nil
}
