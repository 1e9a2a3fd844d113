package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/logsum"
)

var statusDate string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show one day's logs, status label, and coaching tips",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := statusDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", statusDate)
		}
		ctx := cmd.Context()

		sleep, err := a.client.GetSleepLogs(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch sleep logs: %w", err)
		}
		hydration, err := a.client.GetHydrationLogs(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch hydration logs: %w", err)
		}
		meds, err := a.client.GetMedicationsDue(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch medications: %w", err)
		}
		notes, err := a.client.GetHealthNotes(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch health notes: %w", err)
		}

		taken, total := logsum.CountMedications(meds)
		day := logsum.DayInput{
			SleepMin:  logsum.SumSleepMin(sleep),
			MedsTaken: taken,
			MedsTotal: total,
		}
		for _, n := range notes {
			if n.MoodScore != nil {
				day.MoodScore = n.MoodScore
			}
		}

		status := logsum.DeriveDailyStatus(day)
		tips := logsum.BuildCoachingTips(logsum.TipInput{
			DayInput:      day,
			WaterML:       logsum.SumHydrationML(hydration),
			WaterTargetML: a.store.Targets().WaterTargetML,
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s (%s)\n", date, status.Label, status.Severity)
		fmt.Fprintf(out, "Sleep: %d min  Water: %d ml  Meds: %d/%d\n",
			day.SleepMin, logsum.SumHydrationML(hydration), taken, total)
		for _, tip := range tips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusDate, "date", "", "Date YYYY-MM-DD (default today)")
}
