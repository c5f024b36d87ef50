package catalog

import "mcp-diet-plan/internal/models"

var targets = map[Key]CalorieTarget{
	{models.Type1, models.StatusLow}:    {RangeLabel: "1800–2000 kcal/day", TargetKcal: 1900},
	{models.Type1, models.StatusNormal}: {RangeLabel: "1600–1800 kcal/day", TargetKcal: 1700},
	{models.Type1, models.StatusHigh}:   {RangeLabel: "1400–1600 kcal/day", TargetKcal: 1500},

	{models.Type2, models.StatusLow}:    {RangeLabel: "1700–1900 kcal/day", TargetKcal: 1800},
	{models.Type2, models.StatusNormal}: {RangeLabel: "1500–1700 kcal/day", TargetKcal: 1600},
	{models.Type2, models.StatusHigh}:   {RangeLabel: "1300–1500 kcal/day", TargetKcal: 1400},

	{models.Gestational, models.StatusLow}:    {RangeLabel: "2000–2200 kcal/day", TargetKcal: 2100},
	{models.Gestational, models.StatusNormal}: {RangeLabel: "1800–2000 kcal/day", TargetKcal: 1900},
	{models.Gestational, models.StatusHigh}:   {RangeLabel: "1600–1800 kcal/day", TargetKcal: 1700},

	{models.PreDiabetes, models.StatusLow}:    {RangeLabel: "1800–2000 kcal/day", TargetKcal: 1900},
	{models.PreDiabetes, models.StatusNormal}: {RangeLabel: "1600–1800 kcal/day", TargetKcal: 1700},
	{models.PreDiabetes, models.StatusHigh}:   {RangeLabel: "1400–1600 kcal/day", TargetKcal: 1500},
}

// DefaultTip is shown when no tips exist for a condition/status pair.
const DefaultTip = "Follow healthy habits."

var tips = map[Key][]string{
	{models.Type1, models.StatusLow}: {
		"🍽️ Eat frequent small meals to prevent hypoglycemia.",
		"💧 Keep glucose or juice handy for quick correction.",
		"🕒 Avoid long fasting periods; plan snacks.",
		"🛌 Rest if dizzy and inform someone.",
	},
	{models.Type1, models.StatusNormal}: {
		"🏃‍♀️ Exercise moderately (30 min daily).",
		"🍎 Include lean protein and fiber-rich vegetables.",
		"💉 Maintain insulin schedule and timing.",
		"💧 Stay hydrated and monitor regularly.",
	},
	{models.Type1, models.StatusHigh}: {
		"🚫 Avoid sweets and refined carbs.",
		"🚶 Take short walks after meals to improve glucose.",
		"🥗 Favor salads and non-starchy vegetables.",
		"📞 Consult your physician for persistent highs.",
	},
	{models.Type2, models.StatusLow}: {
		"🥣 Choose slow-release carbs like oats and legumes.",
		"💧 Drink water and carry quick carbs for drops.",
		"🍽️ Don’t skip meals; plan balanced snacks.",
		"⚖️ Monitor levels when exercising.",
	},
	{models.Type2, models.StatusNormal}: {
		"🚶 Walk 30–45 minutes after meals.",
		"🥦 Prefer whole grains and vegetables over refined carbs.",
		"🚫 Avoid late-night snacking and sugary drinks.",
		"💧 Stay hydrated and log readings periodically.",
	},
	{models.Type2, models.StatusHigh}: {
		"🚫 Eliminate sugary beverages and junk food.",
		"🏃 Add daily light exercise and increase activity.",
		"🥗 Increase fiber (beans, greens) and reduce portions.",
		"📈 Work with a clinician to adjust meds if needed.",
	},
	{models.Gestational, models.StatusLow}: {
		"🍽️ Eat every 2–3 hours to prevent drops.",
		"🥜 Carry healthy snacks like nuts or fruit.",
		"💧 Hydrate well and rest when needed.",
		"🩺 Keep your obstetrician informed of readings.",
	},
	{models.Gestational, models.StatusNormal}: {
		"🍚 Prioritize balanced meals with protein and complex carbs.",
		"🚶 Walk 10–15 minutes after meals.",
		"📈 Monitor sugars regularly per doctor's guidance.",
		"🚫 Avoid fruit juices and sweets.",
	},
	{models.Gestational, models.StatusHigh}: {
		"🥦 Increase vegetables and whole grains.",
		"🍽️ Have small, frequent meals to spread carbohydrate load.",
		"💬 Consult your healthcare provider for management.",
		"🛌 Ensure adequate rest and reduced stress.",
	},
	{models.PreDiabetes, models.StatusLow}: {
		"🥗 Include complex carbs and avoid long gaps.",
		"🏃 Stay active throughout the day.",
		"🍽️ Keep portion sizes moderate.",
		"🥜 Add nuts and seeds to snacks.",
	},
	{models.PreDiabetes, models.StatusNormal}: {
		"🚶 Walk after each meal for 15–20 minutes.",
		"🥦 Replace refined carbs with whole grains and veg.",
		"😴 Sleep 7–8 hours nightly.",
		"🍏 Limit added sugars and processed foods.",
	},
	{models.PreDiabetes, models.StatusHigh}: {
		"🚫 Avoid soft drinks, sweets and fast foods.",
		"🏃‍♀️ Increase exercise to 45–60 minutes daily.",
		"🥗 Emphasize fiber-rich meals with vegetables and legumes.",
		"📊 Monitor sugar regularly and aim for weight control.",
	},
}
