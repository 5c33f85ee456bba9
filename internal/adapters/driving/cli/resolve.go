package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Inline CSS custom properties in a chart document",
	Long: `Resolves every var(--name) reference in an SVG document and prints
the result to stdout. Reads from stdin when the file is "-".

Properties referencing other properties are followed; references to
undeclared properties become the fallback colour. Documents without
custom properties pass through unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver not configured")
	}

	markup, _, err := readChartDocument(cmd, args[0])
	if err != nil {
		return err
	}

	cmd.Print(resolverService.Resolve(markup))
	return nil
}
