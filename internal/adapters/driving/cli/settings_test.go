package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_Short(t *testing.T) {
	assert.Equal(t, "Manage application settings", settingsCmd.Short)
}

func TestSettingsSetCmd_Use(t *testing.T) {
	assert.Equal(t, "set [key] [value]", settingsSetCmd.Use)
}

func TestSettingsWizardCmd_Use(t *testing.T) {
	assert.Equal(t, "wizard", settingsWizardCmd.Use)
}

func TestSettingsCmd_ShowsSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[Output]")
	assert.Contains(t, buf.String(), "Directory: (per-user default)")
	assert.Contains(t, buf.String(), "[Raster]")
	assert.Contains(t, buf.String(), "Backend: rsvg-convert (librsvg)")
	assert.Contains(t, buf.String(), "Width: 1600")
	assert.Contains(t, buf.String(), "[Chart]")
	assert.Contains(t, buf.String(), "Theme: classic")
	assert.Contains(t, buf.String(), "Language: EN (English)")
	assert.Contains(t, buf.String(), "[Catalog]")
	assert.Contains(t, buf.String(), "Enabled: yes")
	assert.Contains(t, buf.String(), "[Palette]")
	assert.Contains(t, buf.String(), "Overrides: (none)")
}

func TestSettingsShowCmd_ShowsConfiguredValues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := domain.DefaultAppSettings()
	settings.Output.Directory = "/data/charts"
	settings.Palette.Path = "/data/palettes.yaml"
	settingsService = &mockSettingsService{settings: settings}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Directory: /data/charts")
	assert.Contains(t, buf.String(), "Overrides: /data/palettes.yaml")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "theme"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsSetCmd_Theme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockSettingsService{settings: domain.DefaultAppSettings()}
	settingsService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "theme", "dark"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, mock.theme)
	assert.Contains(t, buf.String(), "Default theme set to dark.")
}

func TestSettingsSetCmd_UnknownTheme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "theme", "neon"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
}

func TestSettingsSetCmd_Language(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockSettingsService{settings: domain.DefaultAppSettings()}
	settingsService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "language", "it"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.LanguageIT, mock.language)
	assert.Contains(t, buf.String(), "Default language set to IT.")
}

func TestSettingsSetCmd_UnknownLanguage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "language", "XX"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown language "XX"`)
}

func TestSettingsSetCmd_OutputDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockSettingsService{settings: domain.DefaultAppSettings()}
	settingsService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "output-dir", "/data/charts"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "/data/charts", mock.outputDir)
	assert.Contains(t, buf.String(), "Output directory set to /data/charts.")
}

func TestSettingsSetCmd_EmptyOutputDirRestoresDefault(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "output-dir", ""})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Output directory restored to the per-user default.")
}

func TestSettingsSetCmd_UnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "editor", "vim"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown setting "editor"`)
}

func TestSettingsSetCmd_SaveError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settingsService = &mockSettingsServiceError{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set", "theme", "dark"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "saving theme")
}

func TestSettingsWizardCmd_RunsAllSteps(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockSettingsService{settings: domain.DefaultAppSettings()}
	settingsService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("3\n2\n/tmp/charts\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, mock.theme)
	assert.Equal(t, domain.LanguageIT, mock.language)
	assert.Equal(t, "/tmp/charts", mock.outputDir)
	assert.Contains(t, buf.String(), "Step 1: Default Theme")
	assert.Contains(t, buf.String(), "Step 2: Default Language")
	assert.Contains(t, buf.String(), "Step 3: Output Directory")
	assert.Contains(t, buf.String(), "Configuration complete.")
}

func TestSettingsWizardCmd_DefaultsOnEmptyInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockSettingsService{settings: domain.DefaultAppSettings()}
	settingsService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("\n\n\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeClassic, mock.theme)
	assert.Equal(t, domain.LanguageEN, mock.language)
	assert.Equal(t, "", mock.outputDir)
	assert.Contains(t, buf.String(), "Output directory restored to the per-user default.")
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		want       int
	}{
		{name: "empty returns default", input: "", maxVal: 5, defaultVal: 1, want: 1},
		{name: "valid choice", input: "3", maxVal: 5, defaultVal: 1, want: 3},
		{name: "too high returns default", input: "9", maxVal: 5, defaultVal: 1, want: 1},
		{name: "zero returns default", input: "0", maxVal: 5, defaultVal: 1, want: 1},
		{name: "negative returns default", input: "-2", maxVal: 5, defaultVal: 1, want: 1},
		{name: "not a number returns default", input: "abc", maxVal: 5, defaultVal: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
