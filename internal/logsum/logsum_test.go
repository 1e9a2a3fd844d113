package logsum

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

func intp(v int) *int { return &v }

/* ─── Sum tests ──────────────────────────────────────────────────────── */

// TestSumHydrationML verifies totals and that negative amounts count as zero.
func TestSumHydrationML(t *testing.T) {
	d := model.Date(2026, time.March, 1)
	entries := []model.HydrationLog{
		{Date: d, AmountML: 250},
		{Date: d, AmountML: 500},
		{Date: d, AmountML: -100},
	}
	if got := SumHydrationML(entries); got != 750 {
		t.Errorf("SumHydrationML = %d, want 750", got)
	}
	if got := SumHydrationML(nil); got != 0 {
		t.Errorf("SumHydrationML(nil) = %d, want 0", got)
	}
}

// TestCountMedications verifies taken/total counting over mixed statuses.
func TestCountMedications(t *testing.T) {
	d := model.Date(2026, time.March, 1)
	entries := []model.MedicationLog{
		{MedID: 1, Date: d, Status: model.MedicationTaken},
		{MedID: 2, Date: d, Status: model.MedicationSkipped},
		{MedID: 3, Date: d, Status: model.MedicationTaken},
	}
	taken, total := CountMedications(entries)
	if taken != 2 || total != 3 {
		t.Errorf("CountMedications = %d/%d, want 2/3", taken, total)
	}
}

/* ─── Status priority tests ──────────────────────────────────────────── */

// TestDeriveDailyStatus_Priority walks the rule ladder: each case satisfies
// all lower-priority triggers too, proving the ordering.
func TestDeriveDailyStatus_Priority(t *testing.T) {
	cases := []struct {
		name string
		in   DayInput
		want DailyStatus
	}{
		{
			// Sleep deficit wins even with meds due and low mood.
			"sleep dominates everything",
			DayInput{SleepMin: 240, MedsTaken: 0, MedsTotal: 2, MoodScore: intp(1)},
			DailyStatus{Label: "sleep-deficit", Severity: SeverityBad},
		},
		{
			// Sleep deficit overrides an otherwise perfect day.
			"sleep overrides good mood",
			DayInput{SleepMin: 240, MedsTaken: 1, MedsTotal: 1, MoodScore: intp(5)},
			DailyStatus{Label: "sleep-deficit", Severity: SeverityBad},
		},
		{
			"medication dominates mood",
			DayInput{SleepMin: 480, MedsTaken: 1, MedsTotal: 2, MoodScore: intp(1)},
			DailyStatus{Label: "medication-due", Severity: SeverityWarn},
		},
		{
			"low mood alone",
			DayInput{SleepMin: 480, MedsTaken: 2, MedsTotal: 2, MoodScore: intp(2)},
			DailyStatus{Label: "needs-rest", Severity: SeverityWarn},
		},
		{
			"stable",
			DayInput{SleepMin: 480, MedsTaken: 2, MedsTotal: 2, MoodScore: intp(4)},
			DailyStatus{Label: "stable", Severity: SeverityGood},
		},
		{
			"no mood logged is not low mood",
			DayInput{SleepMin: 480, MedsTaken: 0, MedsTotal: 0},
			DailyStatus{Label: "stable", Severity: SeverityGood},
		},
		{
			// Exactly 5 hours is not a deficit (strict <).
			"five hours exactly",
			DayInput{SleepMin: 300, MedsTaken: 0, MedsTotal: 0},
			DailyStatus{Label: "stable", Severity: SeverityGood},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveDailyStatus(tc.in); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

/* ─── Coaching tip tests ─────────────────────────────────────────────── */

// TestBuildCoachingTips_AllTriggers verifies one tip per unmet threshold, in
// fixed order.
func TestBuildCoachingTips_AllTriggers(t *testing.T) {
	tips := BuildCoachingTips(TipInput{
		DayInput:      DayInput{SleepMin: 300, MedsTaken: 0, MedsTotal: 1, MoodScore: intp(1)},
		WaterML:       500,
		WaterTargetML: 2000,
	})
	if len(tips) != 4 {
		t.Fatalf("got %d tips, want 4: %v", len(tips), tips)
	}
}

// TestBuildCoachingTips_Affirming verifies the single affirming tip when
// every threshold is met.
func TestBuildCoachingTips_Affirming(t *testing.T) {
	tips := BuildCoachingTips(TipInput{
		DayInput:      DayInput{SleepMin: 480, MedsTaken: 1, MedsTotal: 1, MoodScore: intp(4)},
		WaterML:       2500,
		WaterTargetML: 2000,
	})
	if len(tips) != 1 {
		t.Fatalf("got %d tips, want 1: %v", len(tips), tips)
	}
}

// TestBuildCoachingTips_Deterministic verifies identical input yields
// identical output.
func TestBuildCoachingTips_Deterministic(t *testing.T) {
	in := TipInput{
		DayInput:      DayInput{SleepMin: 350, MedsTaken: 0, MedsTotal: 2},
		WaterML:       100,
		WaterTargetML: 2000,
	}
	first := BuildCoachingTips(in)
	for i := 0; i < 5; i++ {
		if again := BuildCoachingTips(in); !reflect.DeepEqual(again, first) {
			t.Fatalf("tips changed between calls: %v vs %v", again, first)
		}
	}
}

/* ─── Range aggregation tests ────────────────────────────────────────── */

// TestAggregateRange_DenominatorIsRangeLength verifies the deliberate policy:
// a 7-day window with 3 days of data divides by 7, not 3.
func TestAggregateRange_DenominatorIsRangeLength(t *testing.T) {
	records := []DayRecord{
		{SleepMin: 420, WaterML: 2100, MoodScore: 4, StressScore: 2},
		{SleepMin: 420, WaterML: 2100, MoodScore: 4, StressScore: 2},
		{SleepMin: 420, WaterML: 2100, MoodScore: 4, StressScore: 2},
	}
	got := AggregateRange(records, 7)
	wantSleepHr := 3 * 7.0 / 7 // 3 days × 7h over 7 days
	if math.Abs(got.AvgSleepHr-wantSleepHr) > 1e-9 {
		t.Errorf("AvgSleepHr = %v, want %v", got.AvgSleepHr, wantSleepHr)
	}
	if got.AvgWaterML != 900 {
		t.Errorf("AvgWaterML = %v, want 900", got.AvgWaterML)
	}
}

// TestAggregateRange_Empty verifies empty input and bad range lengths.
func TestAggregateRange_Empty(t *testing.T) {
	if got := AggregateRange(nil, 7); got != (RangeSummary{}) {
		t.Errorf("empty records: got %+v, want zeros", got)
	}
	if got := AggregateRange([]DayRecord{{SleepMin: 480}}, 0); got != (RangeSummary{}) {
		t.Errorf("zero range: got %+v, want zeros", got)
	}
}

// TestAggregateRange_FullWeek verifies the plain mean when every day has data.
func TestAggregateRange_FullWeek(t *testing.T) {
	records := make([]DayRecord, 7)
	for i := range records {
		records[i] = DayRecord{SleepMin: 480, WaterML: 2000, MoodScore: 3, StressScore: 3}
	}
	got := AggregateRange(records, 7)
	if got.AvgSleepHr != 8 || got.AvgWaterML != 2000 || got.AvgMood != 3 || got.AvgStress != 3 {
		t.Errorf("got %+v, want 8h/2000ml/3/3", got)
	}
}
