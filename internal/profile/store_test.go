package profile

import (
	"math"
	"sync"
	"testing"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
)

func f64(v float64) *float64 { return &v }

// TestNew_StartsEmpty verifies the app-start state: null metrics, no derived values.
func TestNew_StartsEmpty(t *testing.T) {
	s := New()
	p := s.Snapshot()
	if p.HeightCM != nil || p.WeightKG != nil {
		t.Error("new store has non-nil metrics")
	}
	if p.BMI != nil || p.TDEE != nil {
		t.Error("new store has derived values without base metrics")
	}
}

// TestSetMetrics_MergesPartial verifies a patch only touches provided fields.
func TestSetMetrics_MergesPartial(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(65)})

	goal := model.GoalLose
	p := s.SetMetrics(model.MetricsPatch{Goal: &goal})
	if p.HeightCM == nil || *p.HeightCM != 170 {
		t.Errorf("height lost during goal-only patch: %v", p.HeightCM)
	}
	if p.Goal != model.GoalLose {
		t.Errorf("goal = %s, want lose", p.Goal)
	}
}

// TestSetMetrics_DerivedNeverStale verifies a weight update is never visible
// with the previous weight's BMI.
func TestSetMetrics_DerivedNeverStale(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(65)})

	p := s.SetMetrics(model.MetricsPatch{WeightKG: f64(70)})
	if p.BMI == nil {
		t.Fatal("BMI nil after full metrics set")
	}
	// 70 / 1.7² = 24.2
	if *p.BMI != 24.2 {
		t.Errorf("BMI = %v, want 24.2 (recomputed for new weight)", *p.BMI)
	}
	if p.TDEE == nil || *p.TDEE != 2436 {
		t.Errorf("TDEE = %v, want 2436", p.TDEE)
	}
}

// TestSetMetrics_ClearingDerived verifies derived fields go nil when inputs
// are insufficient (weight present, height never set).
func TestSetMetrics_ClearingDerived(t *testing.T) {
	s := New()
	p := s.SetMetrics(model.MetricsPatch{WeightKG: f64(70)})
	if p.BMI != nil {
		t.Errorf("BMI = %v without height, want nil", *p.BMI)
	}
	if p.TDEE == nil {
		t.Error("TDEE nil despite weight + default activity level")
	}
}

// TestSnapshot_Isolated verifies callers cannot mutate store state through a
// snapshot's pointer fields.
func TestSnapshot_Isolated(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(65)})
	p := s.Snapshot()
	*p.WeightKG = 999

	if got := s.Snapshot(); *got.WeightKG != 65 {
		t.Errorf("store weight mutated through snapshot: %v", *got.WeightKG)
	}
}

// TestStore_ConcurrentReaders verifies readers always see a consistent
// weight/BMI pair while a writer is updating.
func TestStore_ConcurrentReaders(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(65)})

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				p := s.Snapshot()
				if p.WeightKG == nil || p.BMI == nil {
					continue
				}
				// BMI must match the weight in the same snapshot.
				h := *p.HeightCM / 100
				want := math.Round(*p.WeightKG/(h*h)*10) / 10
				if *p.BMI != want {
					t.Errorf("inconsistent snapshot: weight=%v bmi=%v want %v", *p.WeightKG, *p.BMI, want)
					return
				}
			}
		}()
	}
	for w := 60.0; w < 90; w++ {
		s.SetMetrics(model.MetricsPatch{WeightKG: f64(w)})
	}
	close(stop)
	wg.Wait()
}

// TestDispose_ResetsState verifies Dispose returns the store to app-start state.
func TestDispose_ResetsState(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(65)})
	s.Dispose()
	p := s.Snapshot()
	if p.WeightKG != nil || p.BMI != nil {
		t.Error("state survived Dispose")
	}
}

// TestTargets_TracksProfile verifies Targets reflects the latest metrics
// immediately after SetMetrics.
func TestTargets_TracksProfile(t *testing.T) {
	s := New()
	s.SetMetrics(model.MetricsPatch{HeightCM: f64(170), WeightKG: f64(70)})
	before := s.Targets()
	s.SetMetrics(model.MetricsPatch{WeightKG: f64(80)})
	after := s.Targets()
	if after.KcalTarget <= before.KcalTarget {
		t.Errorf("kcal target did not increase with weight: %d -> %d", before.KcalTarget, after.KcalTarget)
	}
}
