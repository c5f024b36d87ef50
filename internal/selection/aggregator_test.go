package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-diet-plan/internal/catalog"
	"mcp-diet-plan/internal/models"
)

var (
	oats   = models.CatalogItem{Icon: "🥣", Label: "Oats + milk", Kcal: 230, GI: 55}
	banana = models.CatalogItem{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51}
	pizza  = models.CatalogItem{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60}
)

type recorder struct {
	events []models.OverTargetChanged
}

func (r *recorder) listen(ev models.OverTargetChanged) { r.events = append(r.events, ev) }

func TestToggle_TwiceRestoresTotals(t *testing.T) {
	agg := New(1800, nil)
	agg.Toggle(banana, models.Lunch, models.Moderate)
	before := agg.Totals()

	res := agg.Toggle(oats, models.Breakfast, models.Mandatory)
	assert.True(t, res.Selected)
	assert.Equal(t, before.Kcal+230, res.Totals.Kcal)

	res = agg.Toggle(oats, models.Breakfast, models.Mandatory)
	assert.False(t, res.Selected)
	assert.Equal(t, before, res.Totals)
	assert.Equal(t, 1, agg.Len())
}

func TestToggle_SameGroupReplaces(t *testing.T) {
	agg := New(1800, nil)
	agg.Toggle(oats, models.Breakfast, models.Mandatory)
	res := agg.Toggle(banana, models.Breakfast, models.Mandatory)

	require.NotNil(t, res.Replaced)
	assert.Equal(t, "Oats + milk", res.Replaced.Label)
	assert.Equal(t, 1, agg.Len())
	assert.Equal(t, models.Totals{Kcal: 100, GI: 51}, agg.Totals())
	assert.True(t, agg.IsSelected(models.Breakfast, models.Mandatory, "Banana"))
	assert.False(t, agg.IsSelected(models.Breakfast, models.Mandatory, "Oats + milk"))
}

func TestToggle_ClassesAndSlotsCoexist(t *testing.T) {
	agg := New(5000, nil)
	agg.Toggle(oats, models.Breakfast, models.Mandatory)
	agg.Toggle(banana, models.Breakfast, models.Moderate)
	agg.Toggle(pizza, models.Dinner, models.HighIntake)
	agg.Toggle(banana, models.Snacks, models.Moderate)

	items := agg.Items()
	require.Len(t, items, 4)
	assert.Equal(t, models.Breakfast, items[0].MealSlot)
	assert.Equal(t, models.Mandatory, items[0].AdherenceClass)
	assert.Equal(t, models.Moderate, items[1].AdherenceClass)
	assert.Equal(t, models.Dinner, items[2].MealSlot)
	assert.Equal(t, models.Snacks, items[3].MealSlot)
	assert.Equal(t, models.Totals{Kcal: 1030, GI: 217}, agg.Totals())
}

func TestOverTarget_FlipsOnlyOnChange(t *testing.T) {
	rec := &recorder{}
	agg := New(1000, rec.listen)

	agg.Toggle(pizza, models.Lunch, models.HighIntake)
	assert.Empty(t, rec.events)

	res := agg.Toggle(pizza, models.Dinner, models.HighIntake)
	assert.True(t, res.OverTarget)
	assert.True(t, res.OverTargetChanged)
	require.Len(t, rec.events, 1)
	assert.Equal(t, models.OverTargetChanged{OverTarget: true, Totals: models.Totals{Kcal: 1200, GI: 120}, TargetKcal: 1000}, rec.events[0])

	res = agg.Toggle(banana, models.Snacks, models.Moderate)
	assert.True(t, res.OverTarget)
	assert.False(t, res.OverTargetChanged)
	assert.Len(t, rec.events, 1)

	agg.Toggle(pizza, models.Dinner, models.HighIntake)
	assert.False(t, agg.OverTarget())
	require.Len(t, rec.events, 2)
	assert.False(t, rec.events[1].OverTarget)
	assert.Equal(t, 700, rec.events[1].Totals.Kcal)
}

func TestOverTarget_EqualIsNotOver(t *testing.T) {
	agg := New(330, nil)
	agg.Toggle(oats, models.Breakfast, models.Mandatory)
	agg.Toggle(banana, models.Breakfast, models.Moderate)
	assert.Equal(t, 330, agg.Totals().Kcal)
	assert.False(t, agg.OverTarget())
}

func TestGINeverTriggersWarning(t *testing.T) {
	rec := &recorder{}
	agg := New(10000, rec.listen)
	for _, slot := range models.MealSlots {
		for _, class := range models.AdherenceClasses {
			agg.Toggle(pizza, slot, class)
		}
	}
	assert.Equal(t, 12*60, agg.Totals().GI)
	assert.False(t, agg.OverTarget())
	assert.Empty(t, rec.events)
}

func TestRestore_RecomputesWithoutNotifying(t *testing.T) {
	rec := &recorder{}
	agg := New(500, rec.listen)
	agg.Restore([]models.SelectedItem{
		models.NewSelectedItem(pizza, models.Lunch, models.HighIntake),
		models.NewSelectedItem(oats, models.Breakfast, models.Mandatory),
	})

	assert.Equal(t, models.Totals{Kcal: 830, GI: 115}, agg.Totals())
	assert.True(t, agg.OverTarget())
	assert.Empty(t, rec.events)

	agg.Toggle(pizza, models.Lunch, models.HighIntake)
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].OverTarget)
}

func TestType2LowBreakfastAcrossClasses(t *testing.T) {
	cat := catalog.Default()
	target, err := cat.Target(models.Type2, models.StatusLow)
	require.NoError(t, err)
	plan, err := cat.Plan(models.Type2, models.StatusLow)
	require.NoError(t, err)

	agg := New(target.TargetKcal, nil)
	want := 0
	for _, class := range models.AdherenceClasses {
		item := plan[class][models.Breakfast][0]
		want += item.Kcal
		agg.Toggle(item, models.Breakfast, class)
	}
	assert.Equal(t, want, agg.Totals().Kcal)
	assert.Equal(t, want > 1800, agg.OverTarget())
}
