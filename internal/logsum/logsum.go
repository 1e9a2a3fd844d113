// Package logsum reduces daily log records into per-day and per-range
// summaries, a qualitative status, and coaching tips. Every function is pure:
// missing data degrades to zeros and neutral output, never an error.
package logsum

import (
	"fmt"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

/* ─── Field sums ─────────────────────────────────────────────────────── */

// SumHydrationML totals water intake across entries. Negative amounts are
// treated as 0 — the entry form should prevent them, but old rows exist.
func SumHydrationML(entries []model.HydrationLog) int {
	total := 0
	for _, e := range entries {
		if e.AmountML > 0 {
			total += e.AmountML
		}
	}
	return total
}

// SumSleepMin totals sleep duration across entries, skipping negatives.
func SumSleepMin(entries []model.SleepLog) int {
	total := 0
	for _, e := range entries {
		if e.DurationMin > 0 {
			total += e.DurationMin
		}
	}
	return total
}

// CountMedications returns how many of the day's scheduled medications were
// taken, out of the total scheduled.
func CountMedications(entries []model.MedicationLog) (taken, total int) {
	for _, e := range entries {
		total++
		if e.Status == model.MedicationTaken {
			taken++
		}
	}
	return taken, total
}

/* ─── Daily status ───────────────────────────────────────────────────── */

// Severity ranks a status label for display.
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityWarn Severity = "warn"
	SeverityBad  Severity = "bad"
)

// DailyStatus is a qualitative label for one day's logs.
type DailyStatus struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// DayInput is the per-day summary the status and tip rules run over.
type DayInput struct {
	SleepMin  int
	MedsTaken int
	MedsTotal int
	MoodScore *int
}

// DeriveDailyStatus applies the status rules in priority order — first match
// wins. Sleep deficiency dominates medication reminders, which dominate mood
// warnings; this ordering is deliberate.
func DeriveDailyStatus(in DayInput) DailyStatus {
	switch {
	case float64(in.SleepMin)/60 < 5:
		return DailyStatus{Label: "sleep-deficit", Severity: SeverityBad}
	case in.MedsTaken < in.MedsTotal:
		return DailyStatus{Label: "medication-due", Severity: SeverityWarn}
	case in.MoodScore != nil && *in.MoodScore <= 2:
		return DailyStatus{Label: "needs-rest", Severity: SeverityWarn}
	default:
		return DailyStatus{Label: "stable", Severity: SeverityGood}
	}
}

/* ─── Coaching tips ──────────────────────────────────────────────────── */

// TipInput extends DayInput with the hydration picture for tip generation.
type TipInput struct {
	DayInput
	WaterML       int
	WaterTargetML int
}

// BuildCoachingTips produces human-readable tips for unmet thresholds. Order
// is fixed (sleep, water, medication, mood) so identical input always yields
// identical output. Returns a single affirming tip when nothing triggers.
func BuildCoachingTips(in TipInput) []string {
	var tips []string
	sleepHr := float64(in.SleepMin) / 60
	if sleepHr < 6.5 {
		tips = append(tips, fmt.Sprintf("You slept %.1f hours — aim for at least 7 to recover properly.", sleepHr))
	}
	if in.WaterTargetML > 0 && in.WaterML < in.WaterTargetML {
		tips = append(tips, fmt.Sprintf("You're at %d of %d ml water — keep a bottle nearby.", in.WaterML, in.WaterTargetML))
	}
	if in.MedsTaken < in.MedsTotal {
		tips = append(tips, fmt.Sprintf("%d of %d medications still due today.", in.MedsTotal-in.MedsTaken, in.MedsTotal))
	}
	if in.MoodScore != nil && *in.MoodScore <= 2 {
		tips = append(tips, "Mood looks low — a short walk or an early night can help.")
	}
	if len(tips) == 0 {
		tips = append(tips, "All on track today — keep it up!")
	}
	return tips
}

/* ─── Range aggregation ──────────────────────────────────────────────── */

// DayRecord is one day's totals inside a requested range. Days with no data
// are simply absent from the slice.
type DayRecord struct {
	Date        model.DateOnly `json:"date"`
	SleepMin    int            `json:"sleep_min"`
	WaterML     int            `json:"water_ml"`
	MoodScore   int            `json:"mood_score"`
	StressScore int            `json:"stress_score"`
}

// RangeSummary is the arithmetic mean over a requested range.
type RangeSummary struct {
	AvgSleepHr float64 `json:"avg_sleep_hr"`
	AvgWaterML float64 `json:"avg_water_ml"`
	AvgMood    float64 `json:"avg_mood"`
	AvgStress  float64 `json:"avg_stress"`
}

// AggregateRange averages day records over rangeDays — the requested range
// length, not the count of days with data. Missing days average as zero, so
// sparse logging drags the rolling averages down instead of inflating them.
// Returns a zero summary when rangeDays is not positive.
func AggregateRange(records []DayRecord, rangeDays int) RangeSummary {
	if rangeDays <= 0 {
		return RangeSummary{}
	}
	var sleepMin, waterML, mood, stress float64
	for _, r := range records {
		sleepMin += float64(r.SleepMin)
		waterML += float64(r.WaterML)
		mood += float64(r.MoodScore)
		stress += float64(r.StressScore)
	}
	n := float64(rangeDays)
	return RangeSummary{
		AvgSleepHr: sleepMin / 60 / n,
		AvgWaterML: waterML / n,
		AvgMood:    mood / n,
		AvgStress:  stress / n,
	}
}
