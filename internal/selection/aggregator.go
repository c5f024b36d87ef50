// Package selection tracks the items a user picked from a diet plan and keeps
// calorie and GI totals against the calorie target.
package selection

import "mcp-diet-plan/internal/models"

// Listener receives over-target flips.
type Listener func(models.OverTargetChanged)

type groupKey struct {
	slot  models.MealSlot
	class models.AdherenceClass
}

// Aggregator holds at most one item per (meal slot, adherence class) group.
// GI is summed and reported but never compared against a threshold.
type Aggregator struct {
	targetKcal int
	picks      map[groupKey]models.SelectedItem
	totals     models.Totals
	over       bool
	notify     Listener
}

// Result describes the state after one toggle.
type Result struct {
	Selected          bool                 `json:"selected"`
	Replaced          *models.SelectedItem `json:"replaced,omitempty"`
	Totals            models.Totals        `json:"totals"`
	OverTarget        bool                 `json:"overTarget"`
	OverTargetChanged bool                 `json:"overTargetChanged"`
}

func New(targetKcal int, notify Listener) *Aggregator {
	return &Aggregator{
		targetKcal: targetKcal,
		picks:      make(map[groupKey]models.SelectedItem),
		notify:     notify,
	}
}

// Toggle selects item in its group, replacing any other pick there. Toggling
// the currently selected item clears the group.
func (a *Aggregator) Toggle(item models.CatalogItem, slot models.MealSlot, class models.AdherenceClass) Result {
	key := groupKey{slot, class}
	var res Result

	prev, had := a.picks[key]
	switch {
	case had && prev.Item() == item:
		delete(a.picks, key)
	default:
		if had {
			replaced := prev
			res.Replaced = &replaced
		}
		a.picks[key] = models.NewSelectedItem(item, slot, class)
		res.Selected = true
	}

	res.OverTargetChanged = a.recompute(true)
	res.Totals = a.totals
	res.OverTarget = a.over
	return res
}

// Restore replaces the whole selection without emitting notifications.
func (a *Aggregator) Restore(items []models.SelectedItem) {
	a.picks = make(map[groupKey]models.SelectedItem, len(items))
	for _, it := range items {
		a.picks[groupKey{it.MealSlot, it.AdherenceClass}] = it
	}
	a.recompute(false)
}

// recompute sums every pick from scratch and reports whether the
// over-target flag flipped.
func (a *Aggregator) recompute(emit bool) bool {
	var t models.Totals
	for _, it := range a.picks {
		t.Kcal += it.Kcal
		t.GI += it.GI
	}
	a.totals = t

	over := t.Kcal > a.targetKcal
	if over == a.over {
		return false
	}
	a.over = over
	if emit && a.notify != nil {
		a.notify(models.OverTargetChanged{OverTarget: over, Totals: t, TargetKcal: a.targetKcal})
	}
	return true
}

// Items returns the selection in meal slot, then adherence class order.
func (a *Aggregator) Items() []models.SelectedItem {
	out := make([]models.SelectedItem, 0, len(a.picks))
	for _, slot := range models.MealSlots {
		for _, class := range models.AdherenceClasses {
			if it, ok := a.picks[groupKey{slot, class}]; ok {
				out = append(out, it)
			}
		}
	}
	return out
}

// IsSelected reports whether label is the pick of its group.
func (a *Aggregator) IsSelected(slot models.MealSlot, class models.AdherenceClass, label string) bool {
	it, ok := a.picks[groupKey{slot, class}]
	return ok && it.Label == label
}

func (a *Aggregator) Totals() models.Totals { return a.totals }
func (a *Aggregator) OverTarget() bool      { return a.over }
func (a *Aggregator) TargetKcal() int       { return a.targetKcal }
func (a *Aggregator) Len() int              { return len(a.picks) }
