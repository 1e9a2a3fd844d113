package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/bus"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/plan"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/targets"
)

var (
	planVariant string
	planGoal    string
	planSave    bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Fetch a generated weekly plan, normalize it, and optionally save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := model.Goal(planGoal)
		if !targets.ValidGoal(goal) {
			return fmt.Errorf("invalid goal %q (want lose, maintain, or gain)", planGoal)
		}
		ctx := cmd.Context()

		p, err := a.client.GetGeneratedPlan(ctx, planVariant, goal)
		if err != nil {
			return fmt.Errorf("fetch generated plan: %w", err)
		}
		p = plan.Normalize(p)
		if p == nil {
			return fmt.Errorf("server returned an empty plan")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan: goal=%s variant=%s\n", p.Goal, p.Variant)
		weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		for _, day := range p.Days {
			name := fmt.Sprintf("day %d", day.DOW)
			if day.DOW >= 1 && day.DOW <= 7 {
				name = weekdays[day.DOW-1]
			}
			fmt.Fprintf(out, "%s", name)
			if day.Note != "" {
				fmt.Fprintf(out, " (%s)", day.Note)
			}
			fmt.Fprintln(out)
			if len(day.Items) == 0 {
				fmt.Fprintln(out, "  rest")
				continue
			}
			for _, it := range day.Items {
				switch d := it.Detail.(type) {
				case plan.Cardio:
					fmt.Fprintf(out, "  %s — %d min\n", it.Name, d.DurationMin)
				case plan.Strength:
					fmt.Fprintf(out, "  %s — %dx%d, %ds rest\n", it.Name, d.Sets, d.Reps, d.RestSec)
				case plan.Hold:
					fmt.Fprintf(out, "  %s — %dx%ds hold, %ds rest\n", it.Name, d.Sets, d.HoldSec, d.RestSec)
				}
			}
		}

		if !planSave {
			return nil
		}
		ref, err := a.client.CreateWeeklyPlan(ctx, plan.ToSavePayload(p, nil))
		if err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		a.bus.Emit(bus.TopicPlanSaved, ref)
		fmt.Fprintf(out, "Saved as plan %d\n", ref.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&planVariant, "variant", "balanced", "Plan variant")
	planCmd.Flags().StringVar(&planGoal, "goal", "maintain", "Goal: lose, maintain, or gain")
	planCmd.Flags().BoolVar(&planSave, "save", false, "Save the plan to the server after printing")
}
