package models

import (
	"math"
	"strings"
)

type ConditionType string

const (
	Type1       ConditionType = "Type 1"
	Type2       ConditionType = "Type 2"
	Gestational ConditionType = "Gestational"
	PreDiabetes ConditionType = "Pre-diabetes"
)

// ConditionTypes lists every supported condition.
var ConditionTypes = []ConditionType{Type1, Type2, Gestational, PreDiabetes}

func (c ConditionType) Valid() bool {
	switch c {
	case Type1, Type2, Gestational, PreDiabetes:
		return true
	}
	return false
}

// ParseConditionType accepts the display names plus the spellings found in
// older form submissions ("Pre-Diabetes", "type2", "prediabetes").
func ParseConditionType(s string) (ConditionType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "type1":
		return Type1, true
	case "type2":
		return Type2, true
	case "gestational":
		return Gestational, true
	case "prediabetes":
		return PreDiabetes, true
	}
	return "", false
}

// StatusTier classifies glucose control. The zero value reads as Normal.
type StatusTier string

const (
	StatusLow    StatusTier = "Low"
	StatusNormal StatusTier = "Normal"
	StatusHigh   StatusTier = "High"
)

var StatusTiers = []StatusTier{StatusLow, StatusNormal, StatusHigh}

func (s StatusTier) Valid() bool {
	switch s {
	case StatusLow, StatusNormal, StatusHigh:
		return true
	}
	return false
}

// OrDefault maps an unclassified tier to Normal.
func (s StatusTier) OrDefault() StatusTier {
	if s == "" {
		return StatusNormal
	}
	return s
}

type Profile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	ConditionType ConditionType `json:"conditionType"`
}

// Validate reports every offending field at once.
func (p Profile) Validate() error {
	var verr ValidationError
	if strings.TrimSpace(p.Name) == "" {
		verr.Add("name", "name is required")
	}
	if p.Age <= 0 {
		verr.Add("age", "age must be a positive number")
	}
	if !positive(p.WeightKg) {
		verr.Add("weightKg", "weight must be a positive number")
	}
	if !positive(p.HeightCm) {
		verr.Add("heightCm", "height must be a positive number")
	}
	if !p.ConditionType.Valid() {
		verr.Add("conditionType", "unknown diabetes type")
	}
	return verr.Err()
}

type Reading struct {
	PreMeal  float64 `json:"preMeal"`
	PostMeal float64 `json:"postMeal"`
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ProfileForm is the raw profile input as submitted by the rendering layer.
type ProfileForm struct {
	Name          string `json:"name"`
	Age           string `json:"age"`
	WeightKg      string `json:"weightKg"`
	HeightCm      string `json:"heightCm"`
	ConditionType string `json:"conditionType"`
}

// ReadingForm is the raw glucose input as submitted by the rendering layer.
type ReadingForm struct {
	PreMeal  string `json:"preMeal"`
	PostMeal string `json:"postMeal"`
}
