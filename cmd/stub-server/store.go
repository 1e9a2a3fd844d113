package main

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/api"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/plan"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/reminder"
)

// memoryStore holds all fixture data behind one lock. It exists only so the
// stub can answer write-then-read sequences consistently; nothing persists.
type memoryStore struct {
	mu        sync.RWMutex
	nextID    int
	hydration []model.HydrationLog
	sleep     []model.SleepLog
	meds      []model.MedicationLog
	notes     []model.HealthNote
	meals     []api.MealItem
	plans     []plan.SavePayload
	reminders []reminder.Row
}

// newMemoryStore seeds a few days of plausible logs around today so read
// endpoints return something interesting immediately.
func newMemoryStore() *memoryStore {
	s := &memoryStore{nextID: 100}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < 3; i++ {
		d := model.DateOnly{Time: today.AddDate(0, 0, -i)}
		s.hydration = append(s.hydration,
			model.HydrationLog{ID: s.nextID, Date: d, AmountML: 1200 + 300*i},
		)
		s.nextID++
		start, end := "23:15", "06:45"
		s.sleep = append(s.sleep, model.SleepLog{
			ID: s.nextID, Date: d, DurationMin: 390 + 30*i,
			StartTime: &start, EndTime: &end,
		})
		s.nextID++
		s.meds = append(s.meds,
			model.MedicationLog{MedID: 1, Date: d, Status: model.MedicationTaken},
			model.MedicationLog{MedID: 2, Date: d, Status: model.MedicationSkipped},
		)
		mood, stress := 3+i%2, 2
		s.notes = append(s.notes, model.HealthNote{
			ID: s.nextID, Date: d, MoodScore: &mood, StressScore: &stress,
		})
		s.nextID++
	}
	return s
}

func (s *memoryStore) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// exerciseLibrary is the static fixture behind GET /api/exercises.
var exerciseLibrary = []api.Exercise{
	{ID: 1, Name: "Running", Category: "cardio", Difficulty: "easy", MuscleGrp: "legs"},
	{ID: 2, Name: "Cycling", Category: "cardio", Difficulty: "easy", MuscleGrp: "legs"},
	{ID: 3, Name: "Bench Press", Category: "strength", Difficulty: "medium", MuscleGrp: "chest"},
	{ID: 4, Name: "Deadlift", Category: "strength", Difficulty: "hard", MuscleGrp: "back"},
	{ID: 5, Name: "Squat", Category: "strength", Difficulty: "medium", MuscleGrp: "legs"},
	{ID: 6, Name: "Plank", Category: "hold", Difficulty: "easy", MuscleGrp: "core"},
	{ID: 7, Name: "Wall Sit", Category: "hold", Difficulty: "medium", MuscleGrp: "legs"},
}

// generatePlan builds a one-week suggestion for the variant/goal. Numeric
// fields are deliberately left sparse — the client fills defaults, matching
// what the real generation endpoint sends.
func generatePlan(variant string, goal model.Goal) gin.H {
	cardio := func(name string) gin.H { return gin.H{"name": name} }
	strength := func(name string, sets int) gin.H { return gin.H{"name": name, "sets": sets} }
	hold := func(name string, holdSec int) gin.H { return gin.H{"name": name, "hold_sec": holdSec} }

	days := []gin.H{
		{"dow": 1, "note": "start strong", "items": []gin.H{strength("Squat", 4), hold("Plank", 45)}},
		{"dow": 2, "note": "easy pace", "items": []gin.H{cardio("Running")}},
		{"dow": 3, "note": "", "items": []gin.H{strength("Bench Press", 3), strength("Deadlift", 3)}},
		{"dow": 4, "note": "recovery", "items": []gin.H{hold("Wall Sit", 30)}},
		{"dow": 5, "note": "", "items": []gin.H{cardio("Cycling"), strength("Squat", 3)}},
		{"dow": 6, "note": "long session", "items": []gin.H{cardio("Running"), hold("Plank", 60)}},
		{"dow": 7, "note": "rest day", "items": []gin.H{}},
	}
	if variant == "cardio-priority" {
		days[0]["items"] = []gin.H{cardio("Running"), cardio("Cycling")}
	}
	return gin.H{"goal": goal, "variant": variant, "days": days}
}
