package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently rendered charts",
	Long:  `Lists charts recorded in the render catalog, newest first.`,
	RunE:  runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [chart-id]",
	Short: "Remove a chart from the catalog",
	Long:  `Removes a record from the catalog. Artifact files on disk are left alone.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ctx := context.Background()

	records, err := catalogService.Recent(ctx, historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogDisabled) {
			cmd.Println("The chart catalog is disabled.")
			return nil
		}
		return fmt.Errorf("listing charts: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, records)
	}

	return outputHistoryTable(cmd, records)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	chartID := args[0]
	ctx := context.Background()

	if err := catalogService.Delete(ctx, chartID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no chart with id %s", chartID)
		}
		return fmt.Errorf("deleting chart: %w", err)
	}

	cmd.Printf("Removed chart %s from the catalog.\n", chartID)
	return nil
}

func outputHistoryJSON(cmd *cobra.Command, records []domain.ChartRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, records []domain.ChartRecord) error {
	if len(records) == 0 {
		cmd.Println("No charts in the catalog.")
		return nil
	}

	cmd.Println("Recent charts:")
	cmd.Println()
	for i := range records {
		cmd.Printf("  %s\n", records[i].ID)
		cmd.Printf("    Name: %s\n", records[i].Name)
		cmd.Printf("    Theme: %s  Language: %s  Style: %s\n",
			records[i].Theme, records[i].Language, records[i].Style)
		if records[i].SVGPath != "" {
			cmd.Printf("    SVG: %s\n", records[i].SVGPath)
		}
		if records[i].PNGPath != "" {
			cmd.Printf("    PNG: %s\n", records[i].PNGPath)
		}
		cmd.Printf("    Created: %s\n", records[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d charts\n", len(records))
	return nil
}
