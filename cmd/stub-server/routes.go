package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/api"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/logsum"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/plan"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/reminder"
)

// handler holds shared dependencies for all route handlers.
type handler struct {
	auth  *authState
	store *memoryStore
}

func newHandler(username, password string) (*handler, error) {
	auth, err := newAuthState(username, password)
	if err != nil {
		return nil, err
	}
	return &handler{auth: auth, store: newMemoryStore()}, nil
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router.
func (h *handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/login", h.login)

	// Authenticated routes
	a := router.Group("/api", h.authMiddleware())
	a.GET("/summary/daily", h.getDailySummary)
	a.GET("/summary/weekly", h.getWeeklySummary)
	a.GET("/sleep-logs", h.getSleepLogs)
	a.POST("/sleep-logs", h.createSleepLog)
	a.GET("/hydration-logs", h.getHydrationLogs)
	a.POST("/hydration-logs", h.createHydrationLog)
	a.GET("/medications/due", h.getMedicationsDue)
	a.POST("/medication-logs", h.createMedicationLog)
	a.GET("/health-notes", h.getHealthNotes)
	a.GET("/progress", h.getProgress)
	a.GET("/exercises", h.getExercises)
	a.GET("/plans/generated", h.getGeneratedPlan)
	a.POST("/plans", h.createPlan)
	a.POST("/meal-items", h.createMealItem)
	a.PATCH("/meal-items/:id", h.patchMealItem)
	a.DELETE("/meal-items/:id", h.deleteMealItem)
	a.POST("/reminders", h.createReminders)
}

// queryDate validates the date query param, defaulting to today.
func queryDate(c *gin.Context) (string, bool) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}

func sameDate(d model.DateOnly, date string) bool {
	return d.Time.Format("2006-01-02") == date
}

/* ─── Log reads ──────────────────────────────────────────────────────── */

func (h *handler) getSleepLogs(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	out := []model.SleepLog{}
	h.store.mu.RLock()
	for _, l := range h.store.sleep {
		if sameDate(l.Date, date) {
			out = append(out, l)
		}
	}
	h.store.mu.RUnlock()
	c.JSON(http.StatusOK, out)
}

func (h *handler) getHydrationLogs(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	out := []model.HydrationLog{}
	h.store.mu.RLock()
	for _, l := range h.store.hydration {
		if sameDate(l.Date, date) {
			out = append(out, l)
		}
	}
	h.store.mu.RUnlock()
	c.JSON(http.StatusOK, out)
}

func (h *handler) getMedicationsDue(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	out := []model.MedicationLog{}
	h.store.mu.RLock()
	for _, l := range h.store.meds {
		if sameDate(l.Date, date) {
			out = append(out, l)
		}
	}
	h.store.mu.RUnlock()
	c.JSON(http.StatusOK, out)
}

func (h *handler) getHealthNotes(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	out := []model.HealthNote{}
	h.store.mu.RLock()
	for _, n := range h.store.notes {
		if sameDate(n.Date, date) {
			out = append(out, n)
		}
	}
	h.store.mu.RUnlock()
	c.JSON(http.StatusOK, out)
}

/* ─── Summaries ──────────────────────────────────────────────────────── */

// summarizeDate builds the per-day rollup the same way the real backend
// does: sums per kind plus the medication checklist.
func (h *handler) summarizeDate(date string) api.DaySummary {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()

	var s api.DaySummary
	if t, err := time.Parse("2006-01-02", date); err == nil {
		s.Date = model.DateOnly{Time: t}
	}
	for _, l := range h.store.hydration {
		if sameDate(l.Date, date) && l.AmountML > 0 {
			s.WaterML += l.AmountML
		}
	}
	for _, l := range h.store.sleep {
		if sameDate(l.Date, date) && l.DurationMin > 0 {
			s.SleepMin += l.DurationMin
		}
	}
	for _, l := range h.store.meds {
		if sameDate(l.Date, date) {
			s.MedsTotal++
			if l.Status == model.MedicationTaken {
				s.MedsTaken++
			}
		}
	}
	for _, n := range h.store.notes {
		if sameDate(n.Date, date) && n.MoodScore != nil {
			v := *n.MoodScore
			s.MoodScore = &v
		}
	}
	return s
}

func (h *handler) getDailySummary(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.summarizeDate(date))
}

func (h *handler) getWeeklySummary(c *gin.Context) {
	startStr := c.Query("week_start")
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
		return
	}
	out := make([]api.DaySummary, 7)
	for i := 0; i < 7; i++ {
		out[i] = h.summarizeDate(start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) getProgress(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	startT, err := time.Parse("2006-01-02", start)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	endT, err := time.Parse("2006-01-02", end)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if startT.After(endT) {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	// Only days with any data are returned — no gap-filling; the client's
	// range averaging handles missing days.
	out := []logsum.DayRecord{}
	for d := startT; !d.After(endT); d = d.AddDate(0, 0, 1) {
		s := h.summarizeDate(d.Format("2006-01-02"))
		if s.WaterML == 0 && s.SleepMin == 0 && s.MedsTotal == 0 && s.MoodScore == nil {
			continue
		}
		rec := logsum.DayRecord{Date: s.Date, SleepMin: s.SleepMin, WaterML: s.WaterML}
		if s.MoodScore != nil {
			rec.MoodScore = *s.MoodScore
		}
		out = append(out, rec)
	}
	c.JSON(http.StatusOK, out)
}

/* ─── Exercise library / plans ───────────────────────────────────────── */

func (h *handler) getExercises(c *gin.Context) {
	category := c.Query("category")
	difficulty := c.Query("difficulty")
	muscle := c.Query("muscle_group")
	out := []api.Exercise{}
	for _, e := range exerciseLibrary {
		if category != "" && e.Category != category {
			continue
		}
		if difficulty != "" && e.Difficulty != difficulty {
			continue
		}
		if muscle != "" && e.MuscleGrp != muscle {
			continue
		}
		out = append(out, e)
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) getGeneratedPlan(c *gin.Context) {
	variant := c.DefaultQuery("variant", "balanced")
	goal := model.Goal(c.DefaultQuery("goal", string(model.GoalMaintain)))
	c.JSON(http.StatusOK, generatePlan(variant, goal))
}

func (h *handler) createPlan(c *gin.Context) {
	var payload plan.SavePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload.Days) == 0 {
		apiError(c, http.StatusBadRequest, "plan must have at least one day")
		return
	}
	h.store.mu.Lock()
	h.store.plans = append(h.store.plans, payload)
	id := len(h.store.plans)
	h.store.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

/* ─── Log writes ─────────────────────────────────────────────────────── */

func (h *handler) createHydrationLog(c *gin.Context) {
	var body struct {
		Date     string `json:"date"`
		AmountML int    `json:"amount_ml"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.AmountML <= 0 {
		apiError(c, http.StatusBadRequest, "amount_ml must be positive")
		return
	}
	t, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	h.store.mu.Lock()
	entry := model.HydrationLog{ID: h.store.allocID(), Date: model.DateOnly{Time: t}, AmountML: body.AmountML}
	h.store.hydration = append(h.store.hydration, entry)
	h.store.mu.Unlock()
	c.JSON(http.StatusCreated, entry)
}

func (h *handler) createSleepLog(c *gin.Context) {
	var body api.CreateSleepLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.DurationMin < 0 {
		apiError(c, http.StatusBadRequest, "duration_min must be non-negative")
		return
	}
	t, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	h.store.mu.Lock()
	entry := model.SleepLog{
		ID: h.store.allocID(), Date: model.DateOnly{Time: t}, DurationMin: body.DurationMin,
		StartTime: body.StartTime, EndTime: body.EndTime, Quality: body.Quality,
	}
	h.store.sleep = append(h.store.sleep, entry)
	h.store.mu.Unlock()
	c.JSON(http.StatusCreated, entry)
}

func (h *handler) createMedicationLog(c *gin.Context) {
	var body struct {
		MedID  int                    `json:"med_id"`
		Date   string                 `json:"date"`
		Status model.MedicationStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Status != model.MedicationTaken && body.Status != model.MedicationSkipped {
		apiError(c, http.StatusBadRequest, "status must be taken or skipped")
		return
	}
	t, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	h.store.mu.Lock()
	entry := model.MedicationLog{MedID: body.MedID, Date: model.DateOnly{Time: t}, Status: body.Status}
	h.store.meds = append(h.store.meds, entry)
	h.store.mu.Unlock()
	c.JSON(http.StatusCreated, entry)
}

/* ─── Meal items ─────────────────────────────────────────────────────── */

func (h *handler) createMealItem(c *gin.Context) {
	var body api.CreateMealItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	t, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	h.store.mu.Lock()
	item := api.MealItem{
		ID: h.store.allocID(), Date: model.DateOnly{Time: t}, Name: body.Name,
		Calories: body.Calories, ProteinG: body.ProteinG, CarbsG: body.CarbsG, FatG: body.FatG,
	}
	h.store.meals = append(h.store.meals, item)
	h.store.mu.Unlock()
	c.JSON(http.StatusCreated, item)
}

func (h *handler) patchMealItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var body api.PatchMealItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for i := range h.store.meals {
		if h.store.meals[i].ID != id {
			continue
		}
		if body.Name != nil {
			h.store.meals[i].Name = *body.Name
		}
		if body.Calories != nil {
			h.store.meals[i].Calories = *body.Calories
		}
		if body.ProteinG != nil {
			h.store.meals[i].ProteinG = body.ProteinG
		}
		if body.CarbsG != nil {
			h.store.meals[i].CarbsG = body.CarbsG
		}
		if body.FatG != nil {
			h.store.meals[i].FatG = body.FatG
		}
		c.JSON(http.StatusOK, h.store.meals[i])
		return
	}
	apiError(c, http.StatusNotFound, "meal item not found")
}

func (h *handler) deleteMealItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for i := range h.store.meals {
		if h.store.meals[i].ID == id {
			h.store.meals = append(h.store.meals[:i], h.store.meals[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	apiError(c, http.StatusNotFound, "meal item not found")
}

/* ─── Reminders ──────────────────────────────────────────────────────── */

func (h *handler) createReminders(c *gin.Context) {
	var rows []reminder.Row
	if err := c.ShouldBindJSON(&rows); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, r := range rows {
		if r.DOW < 1 || r.DOW > 7 {
			apiError(c, http.StatusBadRequest, "dow must be 1..7")
			return
		}
	}
	h.store.mu.Lock()
	h.store.reminders = append(h.store.reminders, rows...)
	h.store.mu.Unlock()
	c.Status(http.StatusCreated)
}
