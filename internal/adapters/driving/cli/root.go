// Package cli provides the command-line interface for Stellium.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stellium-labs/stellium-cli/internal/adapters/driven/config/file"
	"github.com/stellium-labs/stellium-cli/internal/adapters/driven/palette"
	"github.com/stellium-labs/stellium-cli/internal/adapters/driven/raster/null"
	"github.com/stellium-labs/stellium-cli/internal/adapters/driven/raster/rsvg"
	"github.com/stellium-labs/stellium-cli/internal/adapters/driven/storage/sqlite"
	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
	"github.com/stellium-labs/stellium-cli/internal/core/services"
	"github.com/stellium-labs/stellium-cli/internal/logger"
)

// Services the commands run against. Execute wires the production set;
// tests substitute mocks.
var (
	renderService   driving.RenderService
	resolverService driving.MarkupResolver
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
)

var (
	verbose  bool
	logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log      = zap.NewNop()

	// store backs the catalog service; closed after the command runs.
	store *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "stellium",
	Short: "Render astrology charts from SVG markup",
	Long: `Stellium turns chart markup into rendered artifacts.

It inlines CSS custom properties, writes SVG and PNG files, keeps a
catalog of rendered charts, and serves the same operations to AI
assistants over the Model Context Protocol.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logLevel.SetLevel(zapcore.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute wires the production services and runs the root command.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices builds the production service graph from configuration.
func initServices() error {
	log = logger.New(logLevel, os.Stderr)

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	settingsService = settings

	current, err := settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	palettes, err := palette.NewProvider(log)
	if err != nil {
		return fmt.Errorf("loading palettes: %w", err)
	}
	if current.Palette.Path != "" {
		if err := palettes.LoadFile(current.Palette.Path); err != nil {
			log.Warn("palette overrides not loaded", zap.Error(err))
		}
	}

	var converter driven.RasterConverter
	switch current.Raster.Backend {
	case domain.RasterBackendRsvg:
		converter = rsvg.NewConverter(log)
	default:
		converter = null.NewConverter()
	}

	var charts driven.ChartStore
	if current.Catalog.Enabled {
		store, err = sqlite.NewStore(current.Catalog.Path)
		if err != nil {
			return fmt.Errorf("opening chart catalog: %w", err)
		}
		charts = store.ChartStore()
	}

	resolver := services.NewCSSResolver(log)
	resolverService = resolver

	renderService = services.NewRenderService(resolver, converter, charts, palettes, services.RenderConfig{
		DefaultDir:      current.Output.Directory,
		Raster:          current.Raster.Options(),
		DefaultTheme:    current.Chart.Theme,
		DefaultLanguage: current.Chart.Language,
	}, log)

	catalogService = services.NewCatalogService(charts, log)

	return nil
}

// closeServices releases resources held by the service graph.
func closeServices() {
	if store != nil {
		if err := store.Close(); err != nil {
			log.Warn("closing chart catalog", zap.Error(err))
		}
	}
	_ = log.Sync() //nolint:errcheck // Stderr sync failure is unactionable
}
