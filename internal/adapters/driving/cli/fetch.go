package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

var (
	fetchTimePeriod string
	fetchTable      bool
	fetchPretty     bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch enriched records once and print them",
	Long: `Runs the pipeline once and prints the enriched records.

Output is JSON, indented when stdout is a terminal or --pretty is set.
Use --table for a human-readable summary.

Examples:
  ytstats fetch
  ytstats fetch --time-period 2024-01-01,2024-02-01
  ytstats fetch --time-period 2024-06-01 --table`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchTimePeriod, "time-period", "t", "", "time range as start,end (either side may be empty)")
	fetchCmd.Flags().BoolVar(&fetchTable, "table", false, "print a table instead of JSON")
	fetchCmd.Flags().BoolVar(&fetchPretty, "pretty", false, "indent JSON output")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if performanceService == nil {
		return errors.New("performance service not configured")
	}

	rng, err := domain.ParseTimeRange(fetchTimePeriod)
	if err != nil {
		return fmt.Errorf("invalid --time-period: %w", err)
	}

	records, err := performanceService.Performance(cmd.Context(), domain.PerformanceQuery{Range: rng})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if fetchTable {
		return outputRecordsTable(cmd, records)
	}
	return outputRecordsJSON(out, records, fetchPretty || isTerminal(out))
}

func outputRecordsJSON(w io.Writer, records []domain.EnrichedRecord, indent bool) error {
	if records == nil {
		records = []domain.EnrichedRecord{}
	}
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputRecordsTable(cmd *cobra.Command, records []domain.EnrichedRecord) error {
	if len(records) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	cmd.Printf("%-12s %10s %8s %8s  %-25s %s\n", "VIDEO", "VIEWS", "LIKES", "COMMENTS", "TIMESTAMP", "TITLE")
	for i := range records {
		r := &records[i]
		cmd.Printf("%-12s %10d %8d %8d  %-25s %s\n",
			r.VideoID, r.Views, r.Likes, r.Comments, r.Timestamp, r.Title)
	}
	cmd.Printf("\n%d records\n", len(records))
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
