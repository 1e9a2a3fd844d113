// Package profile holds the cross-screen body-metrics state. The store is an
// injectable service (constructed once, passed to whoever needs it) rather
// than a package-level singleton, so the target and aggregation functions
// stay independently testable.
package profile

import (
	"sync"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/targets"
)

// Store keeps the current profile and its derived BMI/TDEE. Derived fields
// are recomputed inside the same critical section as the base-field merge, so
// no reader can observe updated metrics with stale derived values.
type Store struct {
	mu      sync.RWMutex
	current model.Profile
}

// New returns a store with null metrics, the state at app start. Goal and
// activity level default to maintain/normal until the user sets them.
func New() *Store {
	return &Store{
		current: model.Profile{
			Metrics: model.Metrics{
				Goal:          model.GoalMaintain,
				ActivityLevel: model.ActivityNormal,
			},
		},
	}
}

// Snapshot returns a copy of the current profile. Pointer fields are
// re-pointed to copies so callers cannot mutate store state through them.
func (s *Store) Snapshot() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.current)
}

// SetMetrics merges a partial update into the base metrics and synchronously
// recomputes BMI and TDEE before releasing the lock. Nil patch fields leave
// the current value untouched.
func (s *Store) SetMetrics(patch model.MetricsPatch) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.HeightCM != nil {
		v := *patch.HeightCM
		s.current.HeightCM = &v
	}
	if patch.WeightKG != nil {
		v := *patch.WeightKG
		s.current.WeightKG = &v
	}
	if patch.Goal != nil {
		s.current.Goal = *patch.Goal
	}
	if patch.ActivityLevel != nil {
		s.current.ActivityLevel = *patch.ActivityLevel
	}

	s.recomputeLocked()
	return cloneProfile(s.current)
}

// Targets computes the daily target bundle for the current metrics. Always
// derived fresh — never cached across SetMetrics calls.
func (s *Store) Targets() model.DailyTargets {
	s.mu.RLock()
	m := s.current.Metrics
	s.mu.RUnlock()
	return targets.ComputeDailyTargets(m)
}

// Refresh is the extension point for pulling the profile from a remote
// source. It currently applies the supplied patch with the same merge +
// synchronous recompute discipline as SetMetrics.
func (s *Store) Refresh(patch model.MetricsPatch) model.Profile {
	return s.SetMetrics(patch)
}

// Dispose clears the store back to its initial null-metrics state.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = New().current
}

// recomputeLocked rederives BMI and TDEE from the base fields. Caller must
// hold the write lock.
func (s *Store) recomputeLocked() {
	s.current.BMI = nil
	s.current.TDEE = nil
	if s.current.HeightCM != nil && s.current.WeightKG != nil {
		s.current.BMI = targets.ComputeBMI(*s.current.HeightCM, *s.current.WeightKG)
	}
	if s.current.WeightKG != nil {
		s.current.TDEE = targets.ComputeTDEE(*s.current.WeightKG, s.current.ActivityLevel)
	}
}

func cloneProfile(p model.Profile) model.Profile {
	out := p
	if p.HeightCM != nil {
		v := *p.HeightCM
		out.HeightCM = &v
	}
	if p.WeightKG != nil {
		v := *p.WeightKG
		out.WeightKG = &v
	}
	if p.BMI != nil {
		v := *p.BMI
		out.BMI = &v
	}
	if p.TDEE != nil {
		v := *p.TDEE
		out.TDEE = &v
	}
	return out
}
