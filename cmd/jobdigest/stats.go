package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"jobdigest/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := stats.Open(filepath.Join(dataDir, "jobdigest.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	totals, err := st.Totals(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("runs recorded:   %d\n", len(totals.Runs))
	fmt.Printf("total jobs found: %d\n", totals.TotalJobsFound)

	sources := make([]string, 0, len(totals.BySource))
	for s := range totals.BySource {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	for _, s := range sources {
		fmt.Printf("  %-16s %d\n", s, totals.BySource[s])
	}

	if len(totals.Runs) > 0 {
		fmt.Printf("last run: %s (%d found)\n", totals.Runs[0].Date, totals.Runs[0].JobsFound)
	}
	return nil
}
