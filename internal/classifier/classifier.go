// Package classifier turns a pair of glucose readings into a status tier.
package classifier

import (
	"math"
	"strconv"
	"strings"

	"mcp-diet-plan/internal/models"
)

// Thresholds in mg/dL. Low is checked before High.
const (
	LowPreMeal   = 70
	LowPostMeal  = 90
	HighPreMeal  = 125
	HighPostMeal = 180
)

// Classify returns Low when either reading is under its low threshold,
// otherwise High when either is over its high threshold, otherwise Normal.
func Classify(preMeal, postMeal float64) (models.StatusTier, error) {
	if err := Validate(models.Reading{PreMeal: preMeal, PostMeal: postMeal}); err != nil {
		return "", err
	}
	switch {
	case preMeal < LowPreMeal || postMeal < LowPostMeal:
		return models.StatusLow, nil
	case preMeal > HighPreMeal || postMeal > HighPostMeal:
		return models.StatusHigh, nil
	default:
		return models.StatusNormal, nil
	}
}

// Validate rejects non-positive and non-finite readings.
func Validate(r models.Reading) error {
	var verr models.ValidationError
	checkValue(&verr, "preMeal", r.PreMeal)
	checkValue(&verr, "postMeal", r.PostMeal)
	return verr.Err()
}

func checkValue(verr *models.ValidationError, field string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		verr.Add(field, "Enter only numbers.")
	case v <= 0:
		verr.Add(field, "Values must be positive numbers.")
	}
}

// ParseReading converts raw form input into a validated Reading.
func ParseReading(form models.ReadingForm) (models.Reading, error) {
	var verr models.ValidationError
	pre := parseField(&verr, "preMeal", form.PreMeal)
	post := parseField(&verr, "postMeal", form.PostMeal)
	if err := verr.Err(); err != nil {
		return models.Reading{}, err
	}
	return models.Reading{PreMeal: pre, PostMeal: post}, nil
}

func parseField(verr *models.ValidationError, field, raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "Please enter both readings.")
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.Add(field, "Enter only numbers.")
		return 0
	}
	checkValue(verr, field, v)
	return v
}
