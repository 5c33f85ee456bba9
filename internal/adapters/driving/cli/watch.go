package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stellium-labs/stellium-cli/internal/adapters/driving/watch"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Render charts as they appear in a directory",
	Long: `Watches a directory and renders every SVG document created or
modified in it until interrupted. Hidden files and artifacts written by
the pipeline itself are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output directory (defaults to the configured directory)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	watcher, err := watch.NewWatcher(renderService, watch.Config{OutputDir: watchOut}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for chart documents. Press Ctrl+C to stop.\n", args[0])
	return watcher.Run(ctx, args[0])
}
