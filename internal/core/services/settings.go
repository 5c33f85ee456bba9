package services

import (
	"fmt"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputDirectory  = "output.directory"
	keyOutputSVG        = "output.svg"
	keyOutputPNG        = "output.png"
	keyRasterBackend    = "raster.backend"
	keyRasterWidth      = "raster.width"
	keyRasterScale      = "raster.scale"
	keyRasterBackground = "raster.background"
	keyChartTheme       = "chart.theme"
	keyChartLanguage    = "chart.language"
	keyCatalogEnabled   = "catalog.enabled"
	keyCatalogPath      = "catalog.path"
	keyPalettePath      = "palette.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			// No default here; empty selects the per-user chart directory.
			Directory: s.configStore.GetString(keyOutputDirectory),
			SVG:       s.getBool(keyOutputSVG, defaults.Output.SVG),
			PNG:       s.getBool(keyOutputPNG, defaults.Output.PNG),
		},
		Raster: domain.RasterSettings{
			Backend:    s.getRasterBackend(defaults.Raster.Backend),
			Width:      s.getInt(keyRasterWidth, defaults.Raster.Width),
			Scale:      s.getFloat(keyRasterScale, defaults.Raster.Scale),
			Background: s.getString(keyRasterBackground, defaults.Raster.Background),
		},
		Chart: domain.ChartSettings{
			Theme:    s.getTheme(defaults.Chart.Theme),
			Language: s.getLanguage(defaults.Chart.Language),
		},
		Catalog: domain.CatalogSettings{
			Enabled: s.getBool(keyCatalogEnabled, defaults.Catalog.Enabled),
			Path:    s.configStore.GetString(keyCatalogPath),
		},
		Palette: domain.PaletteSettings{
			Path: s.configStore.GetString(keyPalettePath),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputDirectory, settings.Output.Directory); err != nil {
		return fmt.Errorf("save output directory: %w", err)
	}
	if err := s.configStore.Set(keyOutputSVG, settings.Output.SVG); err != nil {
		return fmt.Errorf("save output svg: %w", err)
	}
	if err := s.configStore.Set(keyOutputPNG, settings.Output.PNG); err != nil {
		return fmt.Errorf("save output png: %w", err)
	}

	if err := s.configStore.Set(keyRasterBackend, settings.Raster.Backend.String()); err != nil {
		return fmt.Errorf("save raster backend: %w", err)
	}
	if err := s.configStore.Set(keyRasterWidth, settings.Raster.Width); err != nil {
		return fmt.Errorf("save raster width: %w", err)
	}
	if err := s.configStore.Set(keyRasterScale, settings.Raster.Scale); err != nil {
		return fmt.Errorf("save raster scale: %w", err)
	}
	if err := s.configStore.Set(keyRasterBackground, settings.Raster.Background); err != nil {
		return fmt.Errorf("save raster background: %w", err)
	}

	if err := s.configStore.Set(keyChartTheme, settings.Chart.Theme.String()); err != nil {
		return fmt.Errorf("save chart theme: %w", err)
	}
	if err := s.configStore.Set(keyChartLanguage, settings.Chart.Language.String()); err != nil {
		return fmt.Errorf("save chart language: %w", err)
	}

	if err := s.configStore.Set(keyCatalogEnabled, settings.Catalog.Enabled); err != nil {
		return fmt.Errorf("save catalog enabled: %w", err)
	}
	if err := s.configStore.Set(keyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	if err := s.configStore.Set(keyPalettePath, settings.Palette.Path); err != nil {
		return fmt.Errorf("save palette path: %w", err)
	}

	return nil
}

// SetTheme updates the default chart theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", theme)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Chart.Theme = theme

	return s.Save(settings)
}

// SetLanguage updates the default chart language.
func (s *SettingsService) SetLanguage(lang domain.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("invalid language: %s", lang)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Chart.Language = lang

	return s.Save(settings)
}

// SetOutputDirectory updates the default output directory. An empty
// directory restores the per-user default.
func (s *SettingsService) SetOutputDirectory(dir string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Output.Directory = dir

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	val := s.configStore.GetString(keyChartTheme)
	if val == "" {
		return defaultVal
	}
	theme, _ := domain.ParseTheme(val)
	return theme
}

func (s *SettingsService) getLanguage(defaultVal domain.Language) domain.Language {
	val := s.configStore.GetString(keyChartLanguage)
	if val == "" {
		return defaultVal
	}
	lang, _ := domain.ParseLanguage(val)
	return lang
}

func (s *SettingsService) getRasterBackend(defaultVal domain.RasterBackend) domain.RasterBackend {
	val := s.configStore.GetString(keyRasterBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.RasterBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
