package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure chart defaults, raster conversion and catalog options.

Use subcommands to change specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting and persist it.

Available keys:
  theme        - default chart theme (classic, light, dark, strawberry, dark-high-contrast)
  language     - default chart language (EN, IT, FR, ES, PT, CN, RU, TR, DE, HI)
  output-dir   - default output directory (empty restores the per-user default)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the chart defaults step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	if settings.Output.Directory != "" {
		cmd.Printf("  Directory: %s\n", settings.Output.Directory)
	} else {
		cmd.Printf("  Directory: (per-user default)\n")
	}
	cmd.Printf("  SVG: %s\n", yesNo(settings.Output.SVG))
	cmd.Printf("  PNG: %s\n", yesNo(settings.Output.PNG))
	cmd.Println()

	cmd.Println("[Raster]")
	cmd.Printf("  Backend: %s\n", settings.Raster.Backend.Description())
	cmd.Printf("  Width: %d\n", settings.Raster.Width)
	cmd.Printf("  Scale: %.1f\n", settings.Raster.Scale)
	cmd.Printf("  Background: %s\n", settings.Raster.Background)
	cmd.Println()

	cmd.Println("[Chart]")
	cmd.Printf("  Theme: %s\n", settings.Chart.Theme)
	cmd.Printf("  Language: %s (%s)\n", settings.Chart.Language, settings.Chart.Language.Description())
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Catalog.Enabled))
	if settings.Catalog.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	} else {
		cmd.Printf("  Path: (default)\n")
	}
	cmd.Println()

	cmd.Println("[Palette]")
	if settings.Palette.Path != "" {
		cmd.Printf("  Overrides: %s\n", settings.Palette.Path)
	} else {
		cmd.Printf("  Overrides: (none)\n")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	switch key {
	case "theme":
		theme, coerced := domain.ParseTheme(value)
		if coerced {
			return fmt.Errorf("unknown theme %q", value)
		}
		if err := settingsService.SetTheme(theme); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
		cmd.Printf("Default theme set to %s.\n", theme)

	case "language":
		lang, coerced := domain.ParseLanguage(value)
		if coerced {
			return fmt.Errorf("unknown language %q", value)
		}
		if err := settingsService.SetLanguage(lang); err != nil {
			return fmt.Errorf("saving language: %w", err)
		}
		cmd.Printf("Default language set to %s.\n", lang)

	case "output-dir":
		if err := settingsService.SetOutputDirectory(value); err != nil {
			return fmt.Errorf("saving output directory: %w", err)
		}
		if value == "" {
			cmd.Println("Output directory restored to the per-user default.")
		} else {
			cmd.Printf("Output directory set to %s.\n", value)
		}

	default:
		return fmt.Errorf("unknown setting %q (valid: theme, language, output-dir)", key)
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Stellium Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Default Theme
	cmd.Println("Step 1: Default Theme")
	cmd.Println("---------------------")
	themes := domain.AllThemes()
	for i, theme := range themes {
		cmd.Printf("  %d. %s\n", i+1, theme.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	choice := parseChoice(readLine(reader), len(themes), 1)
	theme := themes[choice-1]

	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	cmd.Printf("Default theme set to %s.\n\n", theme)

	// Step 2: Default Language
	cmd.Println("Step 2: Default Language")
	cmd.Println("------------------------")
	languages := domain.AllLanguages()
	for i, lang := range languages {
		cmd.Printf("  %d. %s (%s)\n", i+1, lang, lang.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	choice = parseChoice(readLine(reader), len(languages), 1)
	lang := languages[choice-1]

	if err := settingsService.SetLanguage(lang); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	cmd.Printf("Default language set to %s.\n\n", lang)

	// Step 3: Output Directory
	cmd.Println("Step 3: Output Directory")
	cmd.Println("------------------------")
	cmd.Print("Enter directory (empty keeps the per-user default): ")
	dir := readLine(reader)

	if err := settingsService.SetOutputDirectory(dir); err != nil {
		return fmt.Errorf("saving output directory: %w", err)
	}
	if dir == "" {
		cmd.Println("Output directory restored to the per-user default.")
	} else {
		cmd.Printf("Output directory set to %s.\n", dir)
	}

	cmd.Println()
	cmd.Println("Configuration complete.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
