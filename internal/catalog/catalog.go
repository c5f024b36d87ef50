// Package catalog holds the static nutrition taxonomy: per condition type and
// status tier, three adherence classes of three items for each meal slot,
// plus the calorie target table and lifestyle tips.
package catalog

import (
	"errors"
	"fmt"

	"mcp-diet-plan/internal/models"
)

// ItemsPerGroup is the fixed size of every slot/class item list.
const ItemsPerGroup = 3

// Key identifies one plan in the catalog.
type Key struct {
	Condition models.ConditionType
	Status    models.StatusTier
}

// Plan maps adherence class and meal slot to the ordered item list.
type Plan map[models.AdherenceClass]map[models.MealSlot][]models.CatalogItem

type CalorieTarget struct {
	RangeLabel string `json:"rangeLabel"`
	TargetKcal int    `json:"targetKcal"`
}

// Catalog is immutable after construction.
type Catalog struct {
	plans   map[Key]Plan
	targets map[Key]CalorieTarget
	tips    map[Key][]string
}

var defaultCatalog = &Catalog{plans: plans, targets: targets, tips: tips}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from caller-supplied tables. Tips may be nil.
func New(p map[Key]Plan, t map[Key]CalorieTarget, tp map[Key][]string) *Catalog {
	return &Catalog{plans: p, targets: t, tips: tp}
}

// Plan returns the complete plan for a condition/status pair.
func (c *Catalog) Plan(cond models.ConditionType, status models.StatusTier) (Plan, error) {
	key := Key{cond, status.OrDefault()}
	plan, ok := c.plans[key]
	if !ok {
		return nil, integrityError(key, "no meal plan")
	}
	if err := checkPlan(key, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Catalog) Target(cond models.ConditionType, status models.StatusTier) (CalorieTarget, error) {
	key := Key{cond, status.OrDefault()}
	target, ok := c.targets[key]
	if !ok {
		return CalorieTarget{}, integrityError(key, "no calorie target")
	}
	if target.TargetKcal <= 0 {
		return CalorieTarget{}, integrityError(key, "calorie target must be positive")
	}
	return target, nil
}

// Find resolves an item label inside one slot/class group of a plan.
func (c *Catalog) Find(cond models.ConditionType, status models.StatusTier, slot models.MealSlot, class models.AdherenceClass, label string) (models.CatalogItem, error) {
	var verr models.ValidationError
	if !slot.Valid() {
		verr.Add("mealSlot", fmt.Sprintf("unknown meal slot %q", slot))
	}
	if !class.Valid() {
		verr.Add("adherenceClass", fmt.Sprintf("unknown adherence class %q", class))
	}
	if err := verr.Err(); err != nil {
		return models.CatalogItem{}, err
	}

	plan, err := c.Plan(cond, status)
	if err != nil {
		return models.CatalogItem{}, err
	}
	for _, item := range plan[class][slot] {
		if item.Label == label {
			return item, nil
		}
	}
	return models.CatalogItem{}, models.NewValidationError("item",
		fmt.Sprintf("%q is not offered for %s (%s)", label, slot, class))
}

// Tips returns the lifestyle tips for a pair, falling back to DefaultTip.
func (c *Catalog) Tips(cond models.ConditionType, status models.StatusTier) []string {
	list := c.tips[Key{cond, status.OrDefault()}]
	if len(list) == 0 {
		return []string{DefaultTip}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Validate checks the full condition × status cross-product for a complete
// plan and a calorie target.
func (c *Catalog) Validate() error {
	var errs []error
	for _, cond := range models.ConditionTypes {
		for _, status := range models.StatusTiers {
			if _, err := c.Plan(cond, status); err != nil {
				errs = append(errs, err)
			}
			if _, err := c.Target(cond, status); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func checkPlan(key Key, plan Plan) error {
	for _, class := range models.AdherenceClasses {
		slots, ok := plan[class]
		if !ok {
			return integrityError(key, fmt.Sprintf("missing %s class", class))
		}
		for _, slot := range models.MealSlots {
			items := slots[slot]
			if len(items) != ItemsPerGroup {
				return integrityError(key, fmt.Sprintf("%s/%s has %d items, want %d", class, slot, len(items), ItemsPerGroup))
			}
			for _, item := range items {
				if item.Label == "" || item.Kcal < 0 || item.GI < 0 || item.GI > 100 {
					return integrityError(key, fmt.Sprintf("%s/%s has malformed item %+v", class, slot, item))
				}
			}
		}
	}
	return nil
}

func integrityError(key Key, detail string) error {
	return &models.DataIntegrityError{ConditionType: key.Condition, Status: key.Status, Detail: detail}
}
