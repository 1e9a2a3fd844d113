package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/bus"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/targets"
)

var (
	targetsHeight   float64
	targetsWeight   float64
	targetsGoal     string
	targetsActivity string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Compute daily nutrition and activity targets from body metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := model.Goal(targetsGoal)
		if !targets.ValidGoal(goal) {
			return fmt.Errorf("invalid goal %q (want lose, maintain, or gain)", targetsGoal)
		}
		level := model.ActivityLevel(targetsActivity)
		if !targets.ValidActivityLevel(level) {
			return fmt.Errorf("invalid activity level %q (want low, normal, or high)", targetsActivity)
		}

		patch := model.MetricsPatch{Goal: &goal, ActivityLevel: &level}
		if targetsHeight > 0 {
			patch.HeightCM = &targetsHeight
		}
		if targetsWeight > 0 {
			patch.WeightKG = &targetsWeight
		}
		p := a.store.SetMetrics(patch)
		a.bus.Emit(bus.TopicProfileChanged, p)

		out := cmd.OutOrStdout()
		if p.BMI != nil {
			fmt.Fprintf(out, "BMI: %.1f\n", *p.BMI)
		} else {
			fmt.Fprintln(out, "BMI: - (need height and weight)")
		}
		if p.TDEE != nil {
			fmt.Fprintf(out, "TDEE: %d kcal\n", *p.TDEE)
		} else {
			fmt.Fprintln(out, "TDEE: - (need weight)")
		}

		t := a.store.Targets()
		fmt.Fprintf(out, "Calories: %d kcal\n", t.KcalTarget)
		fmt.Fprintf(out, "Protein: %d g  Carbs: %d g  Fat: %d g  Fiber: %d g\n",
			t.ProteinG, t.CarbsG, t.FatG, t.FiberG)
		fmt.Fprintf(out, "Water: %d ml\n", t.WaterTargetML)
		fmt.Fprintf(out, "Sleep: %d min\n", t.SleepTargetMin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.Flags().Float64Var(&targetsHeight, "height", 0, "Height in cm")
	targetsCmd.Flags().Float64Var(&targetsWeight, "weight", 0, "Weight in kg")
	targetsCmd.Flags().StringVar(&targetsGoal, "goal", "maintain", "Goal: lose, maintain, or gain")
	targetsCmd.Flags().StringVar(&targetsActivity, "activity", "normal", "Activity level: low, normal, or high")
}
