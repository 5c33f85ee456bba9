package driving

import "github.com/stellium-labs/stellium-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetTheme updates the default chart theme.
	SetTheme(theme domain.Theme) error

	// SetLanguage updates the default chart language.
	SetLanguage(lang domain.Language) error

	// SetOutputDirectory updates the default output directory.
	SetOutputDirectory(dir string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
