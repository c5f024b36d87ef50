package models

// MealSlot is one of the four daily meals a plan covers.
type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Dinner    MealSlot = "Dinner"
	Snacks    MealSlot = "Snacks"
)

// MealSlots lists the slots in plan order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snacks}

func (m MealSlot) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snacks:
		return true
	}
	return false
}

// AdherenceClass says how strongly an item is recommended for the user's tier.
type AdherenceClass string

const (
	Mandatory  AdherenceClass = "mandatory"
	Moderate   AdherenceClass = "moderate"
	HighIntake AdherenceClass = "high"
)

// AdherenceClasses lists the classes in display order.
var AdherenceClasses = []AdherenceClass{Mandatory, Moderate, HighIntake}

func (a AdherenceClass) Valid() bool {
	switch a {
	case Mandatory, Moderate, HighIntake:
		return true
	}
	return false
}

type CatalogItem struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Kcal  int    `json:"kcal"`
	GI    int    `json:"gi"`
}

// SelectedItem is a catalog item chosen in a specific meal slot and class.
type SelectedItem struct {
	Icon           string         `json:"icon"`
	Label          string         `json:"label"`
	MealSlot       MealSlot       `json:"mealSlot"`
	AdherenceClass AdherenceClass `json:"adherenceClass"`
	Kcal           int            `json:"kcal"`
	GI             int            `json:"gi"`
}

func NewSelectedItem(item CatalogItem, slot MealSlot, class AdherenceClass) SelectedItem {
	return SelectedItem{
		Icon:           item.Icon,
		Label:          item.Label,
		MealSlot:       slot,
		AdherenceClass: class,
		Kcal:           item.Kcal,
		GI:             item.GI,
	}
}

// Item returns the catalog item this selection refers to.
func (s SelectedItem) Item() CatalogItem {
	return CatalogItem{Icon: s.Icon, Label: s.Label, Kcal: s.Kcal, GI: s.GI}
}

type Totals struct {
	Kcal int `json:"kcal"`
	GI   int `json:"gi"`
}
