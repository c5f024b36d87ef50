package wizard

import (
	"mcp-diet-plan/internal/models"
)

// PlanView is what the diet plan step renders.
type PlanView struct {
	ConditionType models.ConditionType `json:"conditionType"`
	Status        models.StatusTier    `json:"status"`
	RangeLabel    string               `json:"rangeLabel"`
	TargetKcal    int                  `json:"targetKcal"`
	Totals        models.Totals        `json:"totals"`
	OverTarget    bool                 `json:"overTarget"`
	Warning       string               `json:"warning,omitempty"`
	Meals         []MealView           `json:"meals"`
}

type MealView struct {
	Slot    models.MealSlot `json:"slot"`
	Classes []ClassView     `json:"classes"`
}

type ClassView struct {
	Class models.AdherenceClass `json:"class"`
	Items []ItemView            `json:"items"`
}

type ItemView struct {
	models.CatalogItem
	Selected bool `json:"selected"`
}

// Plan returns the diet plan for the current session with selection marks.
func (w *Wizard) Plan() (PlanView, error) {
	if w.agg == nil {
		return PlanView{}, models.ErrNoPlan
	}
	key := w.planKey
	plan, err := w.catalog.Plan(key.Condition, key.Status)
	if err != nil {
		return PlanView{}, err
	}
	target, err := w.catalog.Target(key.Condition, key.Status)
	if err != nil {
		return PlanView{}, err
	}

	view := PlanView{
		ConditionType: key.Condition,
		Status:        key.Status,
		RangeLabel:    target.RangeLabel,
		TargetKcal:    target.TargetKcal,
		Totals:        w.agg.Totals(),
		OverTarget:    w.agg.OverTarget(),
		Warning:       w.warning,
	}
	for _, slot := range models.MealSlots {
		meal := MealView{Slot: slot}
		for _, class := range models.AdherenceClasses {
			cv := ClassView{Class: class}
			for _, item := range plan[class][slot] {
				cv.Items = append(cv.Items, ItemView{
					CatalogItem: item,
					Selected:    w.agg.IsSelected(slot, class, item.Label),
				})
			}
			meal.Classes = append(meal.Classes, cv)
		}
		view.Meals = append(view.Meals, meal)
	}
	return view, nil
}

// Tips returns lifestyle tips for the session's condition and status.
func (w *Wizard) Tips() ([]string, error) {
	if w.profile == nil {
		return nil, models.NewValidationError("profile", "profile must be submitted first")
	}
	return w.catalog.Tips(w.profile.ConditionType, w.status), nil
}
