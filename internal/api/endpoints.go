package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/logsum"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/plan"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/reminder"
)

/* ─── Read endpoints ─────────────────────────────────────────────────── */

// DaySummary is the server's per-day rollup across all log kinds.
type DaySummary struct {
	Date      model.DateOnly `json:"date"`
	WaterML   int            `json:"water_ml"`
	SleepMin  int            `json:"sleep_min"`
	MedsTaken int            `json:"meds_taken"`
	MedsTotal int            `json:"meds_total"`
	MoodScore *int           `json:"mood_score"`
}

// GetDailySummary fetches the rollup for one date (YYYY-MM-DD).
func (c *Client) GetDailySummary(ctx context.Context, date string) (DaySummary, error) {
	var out DaySummary
	err := c.doJSON(ctx, http.MethodGet, "/api/summary/daily", dateQuery(date), nil, &out)
	return out, err
}

// GetWeeklySummary fetches the rollup for the week starting at weekStart.
func (c *Client) GetWeeklySummary(ctx context.Context, weekStart string) ([]DaySummary, error) {
	q := url.Values{}
	if weekStart != "" {
		q.Set("week_start", weekStart)
	}
	var out []DaySummary
	err := c.doJSON(ctx, http.MethodGet, "/api/summary/weekly", q, nil, &out)
	return out, err
}

// GetSleepLogs fetches sleep logs for one date.
func (c *Client) GetSleepLogs(ctx context.Context, date string) ([]model.SleepLog, error) {
	var out []model.SleepLog
	err := c.doJSON(ctx, http.MethodGet, "/api/sleep-logs", dateQuery(date), nil, &out)
	return out, err
}

// GetHydrationLogs fetches hydration logs for one date.
func (c *Client) GetHydrationLogs(ctx context.Context, date string) ([]model.HydrationLog, error) {
	var out []model.HydrationLog
	err := c.doJSON(ctx, http.MethodGet, "/api/hydration-logs", dateQuery(date), nil, &out)
	return out, err
}

// GetMedicationsDue fetches the medication checklist for one date.
func (c *Client) GetMedicationsDue(ctx context.Context, date string) ([]model.MedicationLog, error) {
	var out []model.MedicationLog
	err := c.doJSON(ctx, http.MethodGet, "/api/medications/due", dateQuery(date), nil, &out)
	return out, err
}

// GetHealthNotes fetches mood/stress notes for one date.
func (c *Client) GetHealthNotes(ctx context.Context, date string) ([]model.HealthNote, error) {
	var out []model.HealthNote
	err := c.doJSON(ctx, http.MethodGet, "/api/health-notes", dateQuery(date), nil, &out)
	return out, err
}

// GetWorkoutProgress fetches per-day records across [start, end]. Days with
// no data are absent; range averaging is the caller's concern.
func (c *Client) GetWorkoutProgress(ctx context.Context, start, end string) ([]logsum.DayRecord, error) {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	var out []logsum.DayRecord
	err := c.doJSON(ctx, http.MethodGet, "/api/progress", q, nil, &out)
	return out, err
}

// Exercise is one library entry.
type Exercise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	MuscleGrp  string `json:"muscle_group"`
}

// ExerciseFilter narrows the library listing. Empty fields are omitted.
type ExerciseFilter struct {
	Category   string
	Difficulty string
	MuscleGrp  string
}

// GetExercises fetches the exercise library, filtered.
func (c *Client) GetExercises(ctx context.Context, f ExerciseFilter) ([]Exercise, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		q.Set("difficulty", f.Difficulty)
	}
	if f.MuscleGrp != "" {
		q.Set("muscle_group", f.MuscleGrp)
	}
	var out []Exercise
	err := c.doJSON(ctx, http.MethodGet, "/api/exercises", q, nil, &out)
	return out, err
}

// GetGeneratedPlan fetches a suggested weekly plan for a variant and goal.
// The caller normalizes it before use.
func (c *Client) GetGeneratedPlan(ctx context.Context, variant string, goal model.Goal) (*plan.WeeklyPlan, error) {
	q := url.Values{}
	if variant != "" {
		q.Set("variant", variant)
	}
	if goal != "" {
		q.Set("goal", string(goal))
	}
	var out plan.WeeklyPlan
	if err := c.doJSON(ctx, http.MethodGet, "/api/plans/generated", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

/* ─── Write endpoints ────────────────────────────────────────────────── */

// CreateHydrationLog records a water intake for a date.
func (c *Client) CreateHydrationLog(ctx context.Context, date string, amountML int) (model.HydrationLog, error) {
	body := map[string]any{"date": date, "amount_ml": amountML}
	var out model.HydrationLog
	err := c.doJSON(ctx, http.MethodPost, "/api/hydration-logs", nil, body, &out)
	return out, err
}

// CreateSleepLogRequest is the body for CreateSleepLog. Start/end are "HH:MM"
// clock strings; the server stores them alongside the duration.
type CreateSleepLogRequest struct {
	Date        string  `json:"date"`
	DurationMin int     `json:"duration_min"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Quality     *int    `json:"quality,omitempty"`
}

// CreateSleepLog records one night's sleep.
func (c *Client) CreateSleepLog(ctx context.Context, req CreateSleepLogRequest) (model.SleepLog, error) {
	var out model.SleepLog
	err := c.doJSON(ctx, http.MethodPost, "/api/sleep-logs", nil, req, &out)
	return out, err
}

// CreateMedicationLog marks a medication taken or skipped for a date.
func (c *Client) CreateMedicationLog(ctx context.Context, medID int, date string, status model.MedicationStatus) (model.MedicationLog, error) {
	body := map[string]any{"med_id": medID, "date": date, "status": status}
	var out model.MedicationLog
	err := c.doJSON(ctx, http.MethodPost, "/api/medication-logs", nil, body, &out)
	return out, err
}

// MealItem is one logged meal component.
type MealItem struct {
	ID       int            `json:"id"`
	Date     model.DateOnly `json:"date"`
	Name     string         `json:"name"`
	Calories int            `json:"calories"`
	ProteinG *float64       `json:"protein_g"`
	CarbsG   *float64       `json:"carbs_g"`
	FatG     *float64       `json:"fat_g"`
}

// CreateMealItemRequest is the body for CreateMealItem.
type CreateMealItemRequest struct {
	Date     string   `json:"date"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// CreateMealItem logs a meal component.
func (c *Client) CreateMealItem(ctx context.Context, req CreateMealItemRequest) (MealItem, error) {
	var out MealItem
	err := c.doJSON(ctx, http.MethodPost, "/api/meal-items", nil, req, &out)
	return out, err
}

// PatchMealItemRequest updates only the non-nil fields of a meal item.
type PatchMealItemRequest struct {
	Name     *string  `json:"name"`
	Calories *int     `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// PatchMealItem partially updates a meal item.
func (c *Client) PatchMealItem(ctx context.Context, id int, req PatchMealItemRequest) (MealItem, error) {
	var out MealItem
	err := c.doJSON(ctx, http.MethodPatch, "/api/meal-items/"+strconv.Itoa(id), nil, req, &out)
	return out, err
}

// DeleteMealItem removes a meal item.
func (c *Client) DeleteMealItem(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/meal-items/"+strconv.Itoa(id), nil, nil, nil)
}

// PlanRef identifies a saved weekly plan.
type PlanRef struct {
	ID int `json:"id"`
}

// CreateWeeklyPlan saves an edited plan and returns its server id.
func (c *Client) CreateWeeklyPlan(ctx context.Context, payload *plan.SavePayload) (PlanRef, error) {
	var out PlanRef
	err := c.doJSON(ctx, http.MethodPost, "/api/plans", nil, payload, &out)
	return out, err
}

// CreateReminders saves the weekly reminder rows.
func (c *Client) CreateReminders(ctx context.Context, rows []reminder.Row) error {
	return c.doJSON(ctx, http.MethodPost, "/api/reminders", nil, rows, nil)
}
