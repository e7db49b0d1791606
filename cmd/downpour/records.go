package main

import (
	"fmt"

	"github.com/automoto/downpour/storage"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records <level>",
	Short: "Show the fastest runs of a level",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	level := args[0]
	store, err := storage.Open(expandHome(flagDBPath))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.BestRuns(level, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fastest runs - %s\n\n", level)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-6s  %-9s  %s\n", "Rank", "Time", "Life", "Deaths", "Driver", "Date")
	for i, r := range runs {
		driver := "player"
		if r.Autopilot {
			driver = "autopilot"
		}
		fmt.Fprintf(out, "  %-4d  %-8.2f  %-7.1f  %-6d  %-9s  %s\n",
			i+1, r.Elapsed, r.Life, r.Deaths, driver, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(level); err == nil && stats != nil {
		fmt.Fprintf(out, "\n%d runs, average %.2fs\n", stats.Runs, stats.AvgTime)
	}
	return nil
}
