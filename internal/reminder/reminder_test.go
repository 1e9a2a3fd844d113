package reminder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

// TestDefaultSlots verifies one slot per weekday at the seeded time.
func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()
	if len(slots) != 7 {
		t.Fatalf("got %d slots, want 7", len(slots))
	}
	for i, s := range slots {
		if s.DOW != i+1 {
			t.Errorf("slot %d dow = %d, want %d", i, s.DOW, i+1)
		}
		if s.Hour != DefaultHour || s.Minute != DefaultMinute {
			t.Errorf("slot %d time = %02d:%02d, want %02d:%02d", i, s.Hour, s.Minute, DefaultHour, DefaultMinute)
		}
	}
}

// TestBuildWeeklyTriggers verifies one repeating trigger per slot and that
// bad weekdays are skipped.
func TestBuildWeeklyTriggers(t *testing.T) {
	slots := []model.ReminderSlot{
		{DOW: 1, Hour: 7, Minute: 30},
		{DOW: 0, Hour: 9, Minute: 0}, // invalid, skipped
		{DOW: 7, Hour: 21, Minute: 15},
	}
	triggers := BuildWeeklyTriggers(slots)
	if len(triggers) != 2 {
		t.Fatalf("got %d triggers, want 2", len(triggers))
	}
	want := TriggerDescriptor{Weekday: 1, Hour: 7, Minute: 30, Repeats: true}
	if triggers[0] != want {
		t.Errorf("trigger[0] = %+v, want %+v", triggers[0], want)
	}
	if !triggers[1].Repeats {
		t.Error("trigger not marked repeating")
	}
}

// TestBuildServerPayload verifies the HH:MM:00 formatting and plan linkage.
func TestBuildServerPayload(t *testing.T) {
	slots := []model.ReminderSlot{
		{DOW: 2, Hour: 7, Minute: 5},
		{DOW: 6, Hour: 18, Minute: 0},
	}
	planID := 42
	rows := BuildServerPayload(slots, &planID)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].TimeOfDay != "07:05:00" {
		t.Errorf("time_of_day = %s, want 07:05:00", rows[0].TimeOfDay)
	}
	if rows[1].PlanID == nil || *rows[1].PlanID != 42 {
		t.Errorf("plan_id = %v, want 42", rows[1].PlanID)
	}
}

// TestBuildServerPayload_NoPlan verifies plan_id serializes as an explicit null.
func TestBuildServerPayload_NoPlan(t *testing.T) {
	rows := BuildServerPayload([]model.ReminderSlot{{DOW: 1, Hour: 8, Minute: 0}}, nil)
	body, err := json.Marshal(rows)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"plan_id":null`) {
		t.Errorf("payload missing null plan_id: %s", body)
	}
}
