package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/bus"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/reminder"
)

var (
	remindersHour   int
	remindersMinute int
	remindersPlanID int
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Schedule the weekly workout reminders and push them to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if remindersHour < 0 || remindersHour > 23 {
			return fmt.Errorf("invalid --hour %d, expected 0..23", remindersHour)
		}
		if remindersMinute < 0 || remindersMinute > 59 {
			return fmt.Errorf("invalid --minute %d, expected 0..59", remindersMinute)
		}

		slots := make([]model.ReminderSlot, 7)
		for i := range slots {
			slots[i] = model.ReminderSlot{DOW: i + 1, Hour: remindersHour, Minute: remindersMinute}
		}

		out := cmd.OutOrStdout()
		for _, trig := range reminder.BuildWeeklyTriggers(slots) {
			fmt.Fprintf(out, "weekday %d at %02d:%02d (repeats)\n", trig.Weekday, trig.Hour, trig.Minute)
		}

		var planID *int
		if remindersPlanID > 0 {
			planID = &remindersPlanID
		}
		rows := reminder.BuildServerPayload(slots, planID)
		if err := a.client.CreateReminders(cmd.Context(), rows); err != nil {
			return fmt.Errorf("save reminders: %w", err)
		}
		a.bus.Emit(bus.TopicRemindersSaved, rows)
		fmt.Fprintf(out, "Saved %d reminders\n", len(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	remindersCmd.Flags().IntVar(&remindersHour, "hour", reminder.DefaultHour, "Reminder hour 0..23")
	remindersCmd.Flags().IntVar(&remindersMinute, "minute", reminder.DefaultMinute, "Reminder minute 0..59")
	remindersCmd.Flags().IntVar(&remindersPlanID, "plan-id", 0, "Attach reminders to a saved plan id")
}
