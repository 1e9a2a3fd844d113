// Package plan normalizes a server-suggested weekly workout/meal plan and
// supports the local edits (reorder, remove, numeric overrides) a user makes
// before saving. Plan items are a tagged union over exercise category — the
// category is explicit, never guessed from which optional fields happen to be
// present, and an item carries exactly the fields its category allows.
package plan

import (
	"encoding/json"
	"fmt"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/model"
	"github.com/google/uuid"
)

// Category tags the exercise kind of a plan item.
type Category string

const (
	CategoryCardio   Category = "cardio"
	CategoryStrength Category = "strength"
	CategoryHold     Category = "hold"
)

// Detail is the category-specific payload of an item. Exactly one concrete
// type exists per category; consumers type-switch exhaustively.
type Detail interface {
	Category() Category
}

// Cardio is a duration-based item (run, cycle, swim).
type Cardio struct {
	DurationMin int
}

// Strength is a set/rep item with rest between sets.
type Strength struct {
	Sets    int
	Reps    int
	RestSec int
}

// Hold is an isometric item (plank, yoga pose) held for a time per set.
type Hold struct {
	Sets    int
	HoldSec int
	RestSec int
}

func (Cardio) Category() Category   { return CategoryCardio }
func (Strength) Category() Category { return CategoryStrength }
func (Hold) Category() Category     { return CategoryHold }

// Item is one entry in a day's plan. ID is assigned locally so edits and
// overrides can reference an item independent of its position; it never goes
// over the wire.
type Item struct {
	ID     string
	Name   string
	Detail Detail
}

// DayPlan is one weekday's items. DOW is 1..7 and is never renumbered by edits.
type DayPlan struct {
	DOW   int    `json:"dow"`
	Note  string `json:"note"`
	Items []Item `json:"items"`
}

// WeeklyPlan is the full editable plan held in local state between the
// generation call and the save call.
type WeeklyPlan struct {
	Goal     model.Goal `json:"goal"`
	BMIClass string     `json:"bmi_class"`
	Variant  string     `json:"variant"`
	Days     []DayPlan  `json:"days"`
}

/* ─── Wire decoding ──────────────────────────────────────────────────── */

// wireItem is the uniform item record on the wire: every category field is
// present, with null for fields not applicable to the category.
type wireItem struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	DurationMin *int     `json:"duration_min"`
	Sets        *int     `json:"sets"`
	Reps        *int     `json:"reps"`
	HoldSec     *int     `json:"hold_sec"`
	RestSec     *int     `json:"rest_sec"`
}

// UnmarshalJSON decodes the uniform wire record into the tagged union. An
// explicit category field wins; otherwise the category is inferred once,
// here, at the boundary: a hold_sec field means hold, sets/reps means
// strength, anything else is cardio. Past this point nothing guesses.
func (it *Item) UnmarshalJSON(b []byte) error {
	var w wireItem
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	cat := w.Category
	if cat == "" {
		switch {
		case w.HoldSec != nil:
			cat = CategoryHold
		case w.Sets != nil || w.Reps != nil:
			cat = CategoryStrength
		default:
			cat = CategoryCardio
		}
	}
	it.ID = uuid.New().String()
	it.Name = w.Name
	switch cat {
	case CategoryCardio:
		it.Detail = Cardio{DurationMin: deref(w.DurationMin)}
	case CategoryStrength:
		it.Detail = Strength{Sets: deref(w.Sets), Reps: deref(w.Reps), RestSec: deref(w.RestSec)}
	case CategoryHold:
		it.Detail = Hold{Sets: deref(w.Sets), HoldSec: deref(w.HoldSec), RestSec: deref(w.RestSec)}
	default:
		return fmt.Errorf("unknown plan item category %q", cat)
	}
	return nil
}

// MarshalJSON writes the uniform wire record. Inapplicable fields serialize
// as explicit nulls — a key is never omitted, keeping the payload shape
// stable for the receiving side.
func (it Item) MarshalJSON() ([]byte, error) {
	w := wireItem{Name: it.Name, Category: it.Detail.Category()}
	switch d := it.Detail.(type) {
	case Cardio:
		w.DurationMin = &d.DurationMin
	case Strength:
		w.Sets = &d.Sets
		w.Reps = &d.Reps
		w.RestSec = &d.RestSec
	case Hold:
		w.Sets = &d.Sets
		w.HoldSec = &d.HoldSec
		w.RestSec = &d.RestSec
	}
	return json.Marshal(w)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

/* ─── Normalization ──────────────────────────────────────────────────── */

// Plan-level defaults filled by Normalize.
const (
	defaultBMIClass = "normal"
	defaultVariant  = "balanced"
)

// Category defaults filled by ApplyDefaults for missing numeric fields.
const (
	defaultCardioMin    = 20
	defaultStrengthSets = 3
	defaultStrengthReps = 12
	defaultStrengthRest = 60
	defaultHoldSets     = 3
	defaultHoldSec      = 45
	defaultHoldRest     = 45
)

// Normalize fills plan-level and item-level defaults. Returns nil when the
// payload is absent or contains no days. A day with an empty item list
// passes through untouched. Normalizing an already-normalized plan is a
// no-op, so the generation response and a locally edited plan go through the
// same path.
func Normalize(p *WeeklyPlan) *WeeklyPlan {
	if p == nil || len(p.Days) == 0 {
		return nil
	}
	if p.Goal == "" {
		p.Goal = model.GoalMaintain
	}
	if p.BMIClass == "" {
		p.BMIClass = defaultBMIClass
	}
	if p.Variant == "" {
		p.Variant = defaultVariant
	}
	for di := range p.Days {
		if p.Days[di].Items == nil {
			p.Days[di].Items = []Item{}
		}
		for ii := range p.Days[di].Items {
			ApplyDefaults(&p.Days[di].Items[ii])
		}
	}
	return p
}

// ApplyDefaults fills missing (zero) numeric fields with category defaults.
// Explicit values are never overwritten.
func ApplyDefaults(it *Item) {
	switch d := it.Detail.(type) {
	case Cardio:
		if d.DurationMin == 0 {
			d.DurationMin = defaultCardioMin
		}
		it.Detail = d
	case Strength:
		if d.Sets == 0 {
			d.Sets = defaultStrengthSets
		}
		if d.Reps == 0 {
			d.Reps = defaultStrengthReps
		}
		if d.RestSec == 0 {
			d.RestSec = defaultStrengthRest
		}
		it.Detail = d
	case Hold:
		if d.Sets == 0 {
			d.Sets = defaultHoldSets
		}
		if d.HoldSec == 0 {
			d.HoldSec = defaultHoldSec
		}
		if d.RestSec == 0 {
			d.RestSec = defaultHoldRest
		}
		it.Detail = d
	}
}

/* ─── Local edits ────────────────────────────────────────────────────── */

// Direction selects which neighbor Reorder swaps with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Reorder swaps the item at (dayIndex, itemIndex) with its immediate
// neighbor. Out-of-range indexes and swaps past an array boundary are
// ignored, not errors — the UI disables nothing and just no-ops.
func Reorder(p *WeeklyPlan, dayIndex, itemIndex int, dir Direction) {
	if p == nil || dayIndex < 0 || dayIndex >= len(p.Days) {
		return
	}
	items := p.Days[dayIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return
	}
	switch dir {
	case DirectionUp:
		if itemIndex == 0 {
			return
		}
		items[itemIndex-1], items[itemIndex] = items[itemIndex], items[itemIndex-1]
	case DirectionDown:
		if itemIndex == len(items)-1 {
			return
		}
		items[itemIndex], items[itemIndex+1] = items[itemIndex+1], items[itemIndex]
	}
}

// Remove deletes exactly one item, preserving the order of the rest. The
// day's DOW is untouched.
func Remove(p *WeeklyPlan, dayIndex, itemIndex int) {
	if p == nil || dayIndex < 0 || dayIndex >= len(p.Days) {
		return
	}
	items := p.Days[dayIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return
	}
	p.Days[dayIndex].Items = append(items[:itemIndex], items[itemIndex+1:]...)
}

/* ─── Save payload ───────────────────────────────────────────────────── */

// Override carries user edits to an item's numeric fields, keyed by item ID
// in ToSavePayload. Only fields applicable to the item's category are applied.
type Override struct {
	DurationMin *int
	Sets        *int
	Reps        *int
	HoldSec     *int
	RestSec     *int
}

// SavePayload is the request body for the plan save call.
type SavePayload struct {
	Goal     model.Goal `json:"goal"`
	BMIClass string     `json:"bmi_class"`
	Variant  string     `json:"variant"`
	Days     []SaveDay  `json:"days"`
}

// SaveDay mirrors DayPlan on the wire.
type SaveDay struct {
	DOW   int        `json:"dow"`
	Note  string     `json:"note"`
	Items []wireItem `json:"items"`
}

// ToSavePayload maps the edited plan into the save-request shape: a uniform
// item record per item, inapplicable fields explicit nulls, overrides applied
// where they fit the item's category. Returns nil for a nil plan.
func ToSavePayload(p *WeeklyPlan, overrides map[string]Override) *SavePayload {
	if p == nil {
		return nil
	}
	out := &SavePayload{
		Goal:     p.Goal,
		BMIClass: p.BMIClass,
		Variant:  p.Variant,
		Days:     make([]SaveDay, 0, len(p.Days)),
	}
	for _, day := range p.Days {
		sd := SaveDay{DOW: day.DOW, Note: day.Note, Items: make([]wireItem, 0, len(day.Items))}
		for _, it := range day.Items {
			ov := overrides[it.ID]
			w := wireItem{Name: it.Name, Category: it.Detail.Category()}
			switch d := it.Detail.(type) {
			case Cardio:
				w.DurationMin = pick(ov.DurationMin, d.DurationMin)
			case Strength:
				w.Sets = pick(ov.Sets, d.Sets)
				w.Reps = pick(ov.Reps, d.Reps)
				w.RestSec = pick(ov.RestSec, d.RestSec)
			case Hold:
				w.Sets = pick(ov.Sets, d.Sets)
				w.HoldSec = pick(ov.HoldSec, d.HoldSec)
				w.RestSec = pick(ov.RestSec, d.RestSec)
			}
			sd.Items = append(sd.Items, w)
		}
		out.Days = append(out.Days, sd)
	}
	return out
}

func pick(override *int, current int) *int {
	if override != nil {
		v := *override
		return &v
	}
	v := current
	return &v
}
