package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/plan"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/reminder"
	"github.com/gin-gonic/gin"
)

// TestGetGeneratedPlan_EndToEnd verifies a generation response decodes into
// the tagged union, normalizes, and maps back into a save payload the backend
// accepts with every item key present.
func TestGetGeneratedPlan_EndToEnd(t *testing.T) {
	var savedBody []byte
	c := newTestBackend(t, func(r *gin.Engine) {
		r.GET("/api/plans/generated", func(gc *gin.Context) {
			if gc.Query("variant") != "balanced" || gc.Query("goal") != "lose" {
				gc.JSON(http.StatusBadRequest, gin.H{"error": "bad query"})
				return
			}
			gc.JSON(http.StatusOK, gin.H{
				"goal":    "lose",
				"variant": "balanced",
				"days": []gin.H{
					{"dow": 1, "note": "", "items": []gin.H{
						{"name": "Run", "duration_min": 25},
						{"name": "Plank", "hold_sec": 60},
					}},
				},
			})
		})
		r.POST("/api/plans", func(gc *gin.Context) {
			savedBody, _ = io.ReadAll(gc.Request.Body)
			gc.JSON(http.StatusCreated, gin.H{"id": 7})
		})
	})

	p, err := c.GetGeneratedPlan(context.Background(), "balanced", model.GoalLose)
	if err != nil {
		t.Fatalf("GetGeneratedPlan: %v", err)
	}
	p = plan.Normalize(p)
	if p == nil {
		t.Fatal("generated plan normalized to nil")
	}
	if p.BMIClass != "normal" {
		t.Errorf("bmi class default not filled: %q", p.BMIClass)
	}
	if _, ok := p.Days[0].Items[1].Detail.(plan.Hold); !ok {
		t.Fatalf("hold item decoded as %T", p.Days[0].Items[1].Detail)
	}

	ref, err := c.CreateWeeklyPlan(context.Background(), plan.ToSavePayload(p, nil))
	if err != nil {
		t.Fatalf("CreateWeeklyPlan: %v", err)
	}
	if ref.ID != 7 {
		t.Errorf("plan id = %d, want 7", ref.ID)
	}

	// The backend must see the uniform item shape: null keys included.
	var echo struct {
		Days []struct {
			Items []map[string]json.RawMessage `json:"items"`
		} `json:"days"`
	}
	if err := json.Unmarshal(savedBody, &echo); err != nil {
		t.Fatalf("echo decode: %v", err)
	}
	for _, key := range []string{"duration_min", "sets", "reps", "hold_sec", "rest_sec"} {
		if _, ok := echo.Days[0].Items[0][key]; !ok {
			t.Errorf("save payload item missing key %q", key)
		}
	}
}

// TestCreateReminders verifies the reminder rows land with the HH:MM:00 shape.
func TestCreateReminders(t *testing.T) {
	var got []reminder.Row
	c := newTestBackend(t, func(r *gin.Engine) {
		r.POST("/api/reminders", func(gc *gin.Context) {
			if err := gc.ShouldBindJSON(&got); err != nil {
				gc.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			gc.Status(http.StatusCreated)
		})
	})

	rows := reminder.BuildServerPayload(reminder.DefaultSlots(), nil)
	if err := c.CreateReminders(context.Background(), rows); err != nil {
		t.Fatalf("CreateReminders: %v", err)
	}
	if len(got) != 7 || got[0].TimeOfDay != "18:00:00" {
		t.Errorf("backend received %+v", got)
	}
}

// TestMealItemLifecycle verifies create, patch, and delete against the fake
// backend.
func TestMealItemLifecycle(t *testing.T) {
	c := newTestBackend(t, func(r *gin.Engine) {
		r.POST("/api/meal-items", func(gc *gin.Context) {
			var req CreateMealItemRequest
			if err := gc.ShouldBindJSON(&req); err != nil || req.Name == "" {
				gc.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
				return
			}
			gc.JSON(http.StatusCreated, gin.H{"id": 3, "date": req.Date, "name": req.Name, "calories": req.Calories})
		})
		r.PATCH("/api/meal-items/3", func(gc *gin.Context) {
			gc.JSON(http.StatusOK, gin.H{"id": 3, "date": "2026-03-01", "name": "Oats", "calories": 420})
		})
		r.DELETE("/api/meal-items/3", func(gc *gin.Context) {
			gc.Status(http.StatusNoContent)
		})
	})

	created, err := c.CreateMealItem(context.Background(), CreateMealItemRequest{
		Date: "2026-03-01", Name: "Oats", Calories: 380,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("id = %d, want 3", created.ID)
	}

	kcal := 420
	patched, err := c.PatchMealItem(context.Background(), 3, PatchMealItemRequest{Calories: &kcal})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Calories != 420 {
		t.Errorf("calories = %d, want 420", patched.Calories)
	}

	if err := c.DeleteMealItem(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
