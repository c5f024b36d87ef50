package wizard

import (
	"strconv"
	"strings"

	"mcp-diet-plan/internal/models"
)

// ParseProfile converts raw form input into a validated Profile. Every
// offending field is reported once.
func ParseProfile(form models.ProfileForm) (models.Profile, error) {
	var verr models.ValidationError
	failed := make(map[string]bool)
	fail := func(field, msg string) {
		verr.Add(field, msg)
		failed[field] = true
	}

	p := models.Profile{Name: strings.TrimSpace(form.Name)}
	if p.Name == "" {
		fail("name", "Please fill all profile fields.")
	}

	if raw := strings.TrimSpace(form.Age); raw == "" {
		fail("age", "Please fill all profile fields.")
	} else if age, err := strconv.Atoi(raw); err != nil {
		fail("age", "Only numbers allowed for Age.")
	} else {
		p.Age = age
	}

	p.WeightKg = parseNumber(form.WeightKg, "weightKg", "Weight", fail)
	p.HeightCm = parseNumber(form.HeightCm, "heightCm", "Height", fail)

	if ct, ok := models.ParseConditionType(form.ConditionType); ok {
		p.ConditionType = ct
	} else {
		fail("conditionType", "Please choose a diabetes type.")
	}

	if err := p.Validate(); err != nil {
		if ve, ok := err.(*models.ValidationError); ok {
			for _, f := range ve.Fields {
				if !failed[f.Field] {
					verr.Add(f.Field, f.Message)
				}
			}
		}
	}
	if err := verr.Err(); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func parseNumber(raw, field, label string, fail func(string, string)) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fail(field, "Please fill all profile fields.")
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fail(field, "Only numbers allowed for "+label+".")
		return 0
	}
	return v
}
