package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/api"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/bus"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/clockstr"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a daily log entry",
}

var logDate string

// logEntryDate resolves the shared --date flag, defaulting to today.
func logEntryDate() (string, error) {
	if logDate == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", logDate); err != nil {
		return "", fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", logDate)
	}
	return logDate, nil
}

var logWaterAmount int

var logWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Record a water intake in ml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if logWaterAmount <= 0 {
			return fmt.Errorf("invalid --amount %d, expected a positive ml value", logWaterAmount)
		}
		date, err := logEntryDate()
		if err != nil {
			return err
		}
		entry, err := a.client.CreateHydrationLog(cmd.Context(), date, logWaterAmount)
		if err != nil {
			return fmt.Errorf("save hydration log: %w", err)
		}
		a.bus.Emit(bus.TopicHydrationChanged, entry)
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml on %s\n", entry.AmountML, date)
		return nil
	},
}

var (
	logSleepStart    string
	logSleepEnd      string
	logSleepDuration int
	logSleepQuality  int
)

var logSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record a night's sleep from start/end times or an explicit duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := logEntryDate()
		if err != nil {
			return err
		}
		req := api.CreateSleepLogRequest{Date: date, DurationMin: logSleepDuration}
		if logSleepStart != "" || logSleepEnd != "" {
			// A bedtime after midnight is the normal case, handled by the
			// wrap-around diff.
			mins, ok := clockstr.DiffMinutes(logSleepStart, logSleepEnd)
			if !ok {
				return fmt.Errorf("invalid --start/--end %q/%q, expected HH:MM", logSleepStart, logSleepEnd)
			}
			req.DurationMin = mins
			req.StartTime = &logSleepStart
			req.EndTime = &logSleepEnd
		}
		if req.DurationMin <= 0 {
			return fmt.Errorf("need --start and --end, or a positive --duration")
		}
		if logSleepQuality > 0 {
			req.Quality = &logSleepQuality
		}
		entry, err := a.client.CreateSleepLog(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("save sleep log: %w", err)
		}
		a.bus.Emit(bus.TopicSleepChanged, entry)
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %d min sleep on %s\n", entry.DurationMin, date)
		return nil
	},
}

var (
	logMedID     int
	logMedStatus string
)

var logMedCmd = &cobra.Command{
	Use:   "med",
	Short: "Mark a medication taken or skipped",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := model.MedicationStatus(logMedStatus)
		if status != model.MedicationTaken && status != model.MedicationSkipped {
			return fmt.Errorf("invalid --status %q (want taken or skipped)", logMedStatus)
		}
		date, err := logEntryDate()
		if err != nil {
			return err
		}
		entry, err := a.client.CreateMedicationLog(cmd.Context(), logMedID, date, status)
		if err != nil {
			return fmt.Errorf("save medication log: %w", err)
		}
		a.bus.Emit(bus.TopicNutritionChanged, entry)
		fmt.Fprintf(cmd.OutOrStdout(), "Medication %d %s on %s\n", entry.MedID, entry.Status, date)
		return nil
	},
}

var (
	logMealName     string
	logMealCalories int
)

var logMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Record a meal item",
	RunE: func(cmd *cobra.Command, args []string) error {
		if logMealName == "" {
			return fmt.Errorf("--name is required")
		}
		date, err := logEntryDate()
		if err != nil {
			return err
		}
		item, err := a.client.CreateMealItem(cmd.Context(), api.CreateMealItemRequest{
			Date: date, Name: logMealName, Calories: logMealCalories,
		})
		if err != nil {
			return fmt.Errorf("save meal item: %w", err)
		}
		a.bus.Emit(bus.TopicNutritionChanged, item)
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%d kcal) on %s as item %d\n",
			item.Name, item.Calories, date, item.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logWaterCmd, logSleepCmd, logMedCmd, logMealCmd)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")

	logWaterCmd.Flags().IntVar(&logWaterAmount, "amount", 0, "Water amount in ml")
	_ = logWaterCmd.MarkFlagRequired("amount")

	logSleepCmd.Flags().StringVar(&logSleepStart, "start", "", "Bedtime HH:MM")
	logSleepCmd.Flags().StringVar(&logSleepEnd, "end", "", "Wake time HH:MM")
	logSleepCmd.Flags().IntVar(&logSleepDuration, "duration", 0, "Sleep duration in minutes (alternative to start/end)")
	logSleepCmd.Flags().IntVar(&logSleepQuality, "quality", 0, "Subjective quality 1..5")

	logMedCmd.Flags().IntVar(&logMedID, "id", 0, "Medication id")
	logMedCmd.Flags().StringVar(&logMedStatus, "status", "taken", "Status: taken or skipped")
	_ = logMedCmd.MarkFlagRequired("id")

	logMealCmd.Flags().StringVar(&logMealName, "name", "", "Meal item name")
	logMealCmd.Flags().IntVar(&logMealCalories, "calories", 0, "Calories")
	_ = logMealCmd.MarkFlagRequired("name")
}
