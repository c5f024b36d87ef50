// Package summary projects a finished session into the terminal summary view.
package summary

import (
	"fmt"

	"mcp-diet-plan/internal/catalog"
	"mcp-diet-plan/internal/models"
)

// NoItemsMessage replaces the item list when nothing was selected.
const NoItemsMessage = "No food items selected."

type Line struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Kcal  int    `json:"kcal"`
	GI    int    `json:"gi"`
}

// String renders a line the way the summary page lists it.
func (l Line) String() string {
	return fmt.Sprintf("%s %s — %d kcal — GI %d", l.Icon, l.Label, l.Kcal, l.GI)
}

type View struct {
	Name          string               `json:"name"`
	Age           int                  `json:"age"`
	WeightKg      float64              `json:"weightKg"`
	HeightCm      float64              `json:"heightCm"`
	ConditionType models.ConditionType `json:"conditionType"`
	Status        models.StatusTier    `json:"status"`
	RangeLabel    string               `json:"rangeLabel"`
	TargetKcal    int                  `json:"targetKcal"`
	Items         []Line               `json:"items,omitempty"`
	// NoItems is set instead of Items when the selection is empty.
	NoItems    string        `json:"noItems,omitempty"`
	Totals     models.Totals `json:"totals"`
	OverTarget bool          `json:"overTarget"`
	Warning    string        `json:"warning,omitempty"`
}

// Project builds the summary view. It does not modify s.
func Project(s models.Session, cat *catalog.Catalog) (View, error) {
	if s.Profile == nil {
		return View{}, models.NewValidationError("profile", "profile must be submitted first")
	}
	status := s.Status.OrDefault()
	target, err := cat.Target(s.Profile.ConditionType, status)
	if err != nil {
		return View{}, err
	}

	v := View{
		Name:          s.Profile.Name,
		Age:           s.Profile.Age,
		WeightKg:      s.Profile.WeightKg,
		HeightCm:      s.Profile.HeightCm,
		ConditionType: s.Profile.ConditionType,
		Status:        status,
		RangeLabel:    target.RangeLabel,
		TargetKcal:    target.TargetKcal,
		Totals:        s.Totals,
		OverTarget:    s.OverTarget,
		Warning:       s.Warning,
	}
	if len(s.Selection) == 0 {
		v.NoItems = NoItemsMessage
		return v, nil
	}
	v.Items = make([]Line, 0, len(s.Selection))
	for _, it := range s.Selection {
		v.Items = append(v.Items, Line{Icon: it.Icon, Label: it.Label, Kcal: it.Kcal, GI: it.GI})
	}
	return v, nil
}
