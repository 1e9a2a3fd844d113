// Package reminder shapes weekly reminder slots into the two things built
// from them: recurring local-notification trigger descriptors for the OS, and
// reminder rows for the server. Both builders are pure — scheduling and
// persistence are separate caller steps, so a failure in one cannot corrupt
// the other's already-built output.
package reminder

import (
	"fmt"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

// Default reminder time seeded for each weekday until the user edits it.
const (
	DefaultHour   = 18
	DefaultMinute = 0
)

// TriggerDescriptor describes one recurring local notification. The OS
// notification layer consumes this verbatim; building it performs no I/O.
type TriggerDescriptor struct {
	Weekday int  `json:"weekday"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Repeats bool `json:"repeats"`
}

// Row is one server-side reminder record.
type Row struct {
	TimeOfDay string `json:"time_of_day"`
	DOW       int    `json:"dow"`
	PlanID    *int   `json:"plan_id"`
}

// DefaultSlots seeds one slot per weekday at the default time.
func DefaultSlots() []model.ReminderSlot {
	slots := make([]model.ReminderSlot, 7)
	for i := range slots {
		slots[i] = model.ReminderSlot{DOW: i + 1, Hour: DefaultHour, Minute: DefaultMinute}
	}
	return slots
}

// BuildWeeklyTriggers maps each slot to a repeating trigger descriptor.
// Slots with an out-of-range weekday are skipped rather than erroring.
func BuildWeeklyTriggers(slots []model.ReminderSlot) []TriggerDescriptor {
	out := make([]TriggerDescriptor, 0, len(slots))
	for _, s := range slots {
		if s.DOW < 1 || s.DOW > 7 {
			continue
		}
		out = append(out, TriggerDescriptor{
			Weekday: s.DOW,
			Hour:    s.Hour,
			Minute:  s.Minute,
			Repeats: true,
		})
	}
	return out
}

// BuildServerPayload maps each slot to a reminder row with an "HH:MM:00"
// time. planID is nil when no plan context exists; the same pointer value is
// shared across rows because the server treats it as opaque.
func BuildServerPayload(slots []model.ReminderSlot, planID *int) []Row {
	out := make([]Row, 0, len(slots))
	for _, s := range slots {
		if s.DOW < 1 || s.DOW > 7 {
			continue
		}
		out = append(out, Row{
			TimeOfDay: fmt.Sprintf("%02d:%02d:00", s.Hour, s.Minute),
			DOW:       s.DOW,
			PlanID:    planID,
		})
	}
	return out
}
