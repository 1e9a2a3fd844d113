// Package model holds the domain types shared by the aggregation core and the
// API client: daily log entries, the user profile, derived daily targets, and
// weekly reminder slots. Weekly plan types live in internal/plan because plan
// items are a tagged union with their own behavior.
package model

import "time"

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Date builds a DateOnly from a calendar day.
func Date(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

/* ─── Goal / activity enums ──────────────────────────────────────────── */

// Goal is the user's weight goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ActivityLevel buckets habitual activity for TDEE estimation.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityNormal ActivityLevel = "normal"
	ActivityHigh   ActivityLevel = "high"
)

/* ─── Profile ─────────────────────────────────────────────────────────── */

// Metrics are the user's base body/goal fields. Nullable numeric fields use
// pointers so a partial update can distinguish "not provided" from zero.
type Metrics struct {
	HeightCM      *float64      `json:"height_cm"`
	WeightKG      *float64      `json:"weight_kg"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// MetricsPatch is a partial update merged into Metrics. Only non-nil fields
// are applied — the same pointer-field convention as the API patch bodies.
type MetricsPatch struct {
	HeightCM      *float64       `json:"height_cm"`
	WeightKG      *float64       `json:"weight_kg"`
	Goal          *Goal          `json:"goal"`
	ActivityLevel *ActivityLevel `json:"activity_level"`
}

// Profile is the base metrics plus derived values. BMI and TDEE are always
// recomputed from the base fields, never stored independently.
type Profile struct {
	Metrics
	BMI  *float64 `json:"bmi,omitempty"`
	TDEE *int     `json:"tdee,omitempty"`
}

/* ─── Daily log entries (API-owned, read-only to the core) ───────────── */

// HydrationLog is one water intake record.
type HydrationLog struct {
	ID       int      `json:"id"`
	Date     DateOnly `json:"date"`
	AmountML int      `json:"amount_ml"`
}

// SleepLog is one night's sleep record. Start/end are "HH:MM" clock strings
// as entered by the user; DurationMin is authoritative.
type SleepLog struct {
	ID          int      `json:"id"`
	Date        DateOnly `json:"date"`
	DurationMin int      `json:"duration_min"`
	StartTime   *string  `json:"start_time,omitempty"`
	EndTime     *string  `json:"end_time,omitempty"`
	Quality     *int     `json:"quality,omitempty"`
	AwakeCount  *int     `json:"awake_count,omitempty"`
}

// MedicationStatus is the per-day state of one scheduled medication.
type MedicationStatus string

const (
	MedicationTaken   MedicationStatus = "taken"
	MedicationSkipped MedicationStatus = "skipped"
)

// MedicationLog records whether a scheduled medication was taken on a date.
type MedicationLog struct {
	MedID  int              `json:"med_id"`
	Date   DateOnly         `json:"date"`
	Status MedicationStatus `json:"status"`
}

// HealthNote is a free-form daily check-in. Mood and stress are 1–5 when present.
type HealthNote struct {
	ID         int      `json:"id"`
	Date       DateOnly `json:"date"`
	MoodScore   *int     `json:"mood_score,omitempty"`
	StressScore *int     `json:"stress_score,omitempty"`
	FreeText    string   `json:"free_text,omitempty"`
}

/* ─── Derived targets ─────────────────────────────────────────────────── */

// DailyTargets is computed fresh from the profile on each request — never
// cached across profile changes.
type DailyTargets struct {
	KcalTarget     int `json:"kcal_target"`
	ProteinG       int `json:"protein_g"`
	CarbsG         int `json:"carbs_g"`
	FatG           int `json:"fat_g"`
	FiberG         int `json:"fiber_g"`
	WaterTargetML  int `json:"water_target_ml"`
	SleepTargetMin int `json:"sleep_target_min"`
}

/* ─── Reminders ───────────────────────────────────────────────────────── */

// ReminderSlot is one per-weekday reminder time. DOW is 1..7 (Mon..Sun).
type ReminderSlot struct {
	DOW    int `json:"dow"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}
