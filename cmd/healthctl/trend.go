package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/logsum"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show rolling averages over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendDays <= 0 {
			return fmt.Errorf("invalid --days %d, expected a positive number", trendDays)
		}
		end := time.Now()
		start := end.AddDate(0, 0, -(trendDays - 1))

		records, err := a.client.GetWorkoutProgress(cmd.Context(),
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		if err != nil {
			return fmt.Errorf("fetch progress: %w", err)
		}

		// Averages divide by the requested range, so days without logs pull
		// the numbers down rather than vanishing.
		summary := logsum.AggregateRange(records, trendDays)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Last %d days (%d with data):\n", trendDays, len(records))
		fmt.Fprintf(out, "Sleep: %.1f hr/day\n", summary.AvgSleepHr)
		fmt.Fprintf(out, "Water: %.0f ml/day\n", summary.AvgWaterML)
		fmt.Fprintf(out, "Mood: %.1f/5  Stress: %.1f/5\n", summary.AvgMood, summary.AvgStress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().IntVar(&trendDays, "days", 7, "Range length in days ending today")
}
