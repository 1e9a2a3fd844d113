// Package targets derives daily nutrition and activity targets from body
// metrics. Every function is pure and total: missing or zero input degrades
// to nil / fallback values, never an error. Consumers treat nil as
// "insufficient data", not failure.
package targets

import (
	"math"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

// activityFactors maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels — also used for input
// validation wherever an activity level is accepted.
var activityFactors = map[model.ActivityLevel]float64{
	model.ActivityLow:    1.2,
	model.ActivityNormal: 1.45,
	model.ActivityHigh:   1.7,
}

// kcalPerKGFallback is the per-kg daily calorie multiplier used when no TDEE
// is available (weight known but activity level not).
var kcalPerKGFallback = map[model.Goal]float64{
	model.GoalLose:     28,
	model.GoalMaintain: 31,
	model.GoalGain:     34,
}

// proteinPerKG maps goal to the protein gram target per kg of body weight.
var proteinPerKG = map[model.Goal]float64{
	model.GoalLose:     2.0,
	model.GoalMaintain: 1.6,
	model.GoalGain:     1.8,
}

// goalKcalAdjust is the calorie delta applied to TDEE per goal.
var goalKcalAdjust = map[model.Goal]int{
	model.GoalLose:     -300,
	model.GoalMaintain: 0,
	model.GoalGain:     300,
}

const (
	fiberTargetG   = 30
	sleepTargetMin = 480

	// Water target: 35 ml per kg, bounded to a sane range.
	waterMLPerKG = 35
	waterFloorML = 1500
	waterCapML   = 4000
)

// ValidActivityLevel reports whether s is a recognised activity level.
func ValidActivityLevel(s model.ActivityLevel) bool {
	_, ok := activityFactors[s]
	return ok
}

// ValidGoal reports whether g is a recognised goal.
func ValidGoal(g model.Goal) bool {
	_, ok := goalKcalAdjust[g]
	return ok
}

// ComputeBMI returns weight(kg)/height(m)² rounded to one decimal place, or
// nil when either input is missing or zero.
func ComputeBMI(heightCM, weightKG float64) *float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return nil
	}
	heightM := heightCM / 100
	bmi := math.Round(weightKG/(heightM*heightM)*10) / 10
	return &bmi
}

// ComputeTDEE estimates total daily energy expenditure from weight and
// activity level using a simplified 24 kcal/kg BMR. Returns nil when weight
// is missing or the activity level is unknown.
func ComputeTDEE(weightKG float64, level model.ActivityLevel) *int {
	if weightKG <= 0 {
		return nil
	}
	factor, ok := activityFactors[level]
	if !ok {
		return nil
	}
	bmr := 24 * weightKG
	tdee := int(math.Round(bmr * factor))
	return &tdee
}

// ComputeKcalTarget derives the daily calorie target: TDEE adjusted ±300 for
// the goal when TDEE is known, otherwise a per-kg fallback multiplier.
// Degrades to 0 when neither TDEE nor weight is available.
func ComputeKcalTarget(tdee *int, weightKG float64, goal model.Goal) int {
	if tdee != nil {
		return *tdee + goalKcalAdjust[goal]
	}
	if weightKG <= 0 {
		return 0
	}
	mult, ok := kcalPerKGFallback[goal]
	if !ok {
		mult = kcalPerKGFallback[model.GoalMaintain]
	}
	return int(math.Round(mult * weightKG))
}

// MacroTargets is the macronutrient gram split for a calorie target.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
}

// ComputeMacroTargets splits kcalTarget into protein/carb/fat grams: protein
// from a per-kg rate keyed by goal, fat from 25% of calories, carbs from the
// remainder. Gram values round to whole grams; a negative carb remainder
// (very low calorie target against a high protein need) clamps to 0.
func ComputeMacroTargets(kcalTarget int, weightKG float64, goal model.Goal) MacroTargets {
	rate, ok := proteinPerKG[goal]
	if !ok {
		rate = proteinPerKG[model.GoalMaintain]
	}
	proteinG := 0.0
	if weightKG > 0 {
		proteinG = rate * weightKG
	}
	fatG := float64(kcalTarget) * 0.25 / 9
	carbKcal := float64(kcalTarget) - proteinG*4 - fatG*9
	carbsG := carbKcal / 4
	if carbsG < 0 {
		carbsG = 0
	}
	return MacroTargets{
		ProteinG: int(math.Round(proteinG)),
		CarbsG:   int(math.Round(carbsG)),
		FatG:     int(math.Round(fatG)),
		FiberG:   fiberTargetG,
	}
}

// ComputeWaterTargetML derives the daily hydration target from weight,
// bounded to [1500, 4000] ml. Falls back to the floor when weight is missing.
func ComputeWaterTargetML(weightKG float64) int {
	if weightKG <= 0 {
		return waterFloorML
	}
	ml := int(math.Round(weightKG * waterMLPerKG))
	if ml < waterFloorML {
		return waterFloorML
	}
	if ml > waterCapML {
		return waterCapML
	}
	return ml
}

// SleepTargetMin is the recommended nightly sleep duration in minutes.
func SleepTargetMin() int { return sleepTargetMin }

// ComputeDailyTargets bundles the full target set for a profile. Computed
// fresh on every call — nothing here is cached across profile changes.
func ComputeDailyTargets(m model.Metrics) model.DailyTargets {
	weight := 0.0
	if m.WeightKG != nil {
		weight = *m.WeightKG
	}
	tdee := (*int)(nil)
	if m.WeightKG != nil {
		tdee = ComputeTDEE(*m.WeightKG, m.ActivityLevel)
	}
	kcal := ComputeKcalTarget(tdee, weight, m.Goal)
	macros := ComputeMacroTargets(kcal, weight, m.Goal)
	return model.DailyTargets{
		KcalTarget:     kcal,
		ProteinG:       macros.ProteinG,
		CarbsG:         macros.CarbsG,
		FatG:           macros.FatG,
		FiberG:         macros.FiberG,
		WaterTargetML:  ComputeWaterTargetML(weight),
		SleepTargetMin: sleepTargetMin,
	}
}
