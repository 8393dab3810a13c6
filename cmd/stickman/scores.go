package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickman/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest runs",
	Long: `Display the longest recorded runs, local and over SSH.

Examples:
  stickman scores
  stickman scores --limit 20
  stickman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Longest Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'stickman play' and walk a while!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-12s  %s\n", "Rank", "Distance", "Time", "Size", "Who", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-12s  %s\n", "----", "--------", "----", "----", "---", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %-12s  %s\n",
			i+1,
			run.Distance,
			run.Duration.Round(time.Second),
			run.Size,
			run.Source,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if best, err := store.BestDistance(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
