package models

import "time"

// Step names one page of the wizard.
type Step string

const (
	StepLanding   Step = "landing"
	StepProfile   Step = "profile"
	StepReading   Step = "reading"
	StepDietPlan  Step = "dietPlan"
	StepLifestyle Step = "lifestyle"
	StepSummary   Step = "summary"
)

// Steps lists the wizard pages in forward order.
var Steps = []Step{StepLanding, StepProfile, StepReading, StepDietPlan, StepLifestyle, StepSummary}

func (s Step) Valid() bool {
	for _, step := range Steps {
		if s == step {
			return true
		}
	}
	return false
}

// Resumable reports whether a checkpoint can jump straight to this step.
func (s Step) Resumable() bool {
	switch s {
	case StepDietPlan, StepLifestyle, StepSummary:
		return true
	}
	return false
}

// OverTargetWarning is the sticky message shown while the calorie total is
// above the target.
const OverTargetWarning = "⚠️ You have exceeded the recommended calories!"

// Session is a read-only copy of the wizard's working state.
type Session struct {
	ID         string         `json:"id"`
	Profile    *Profile       `json:"profile,omitempty"`
	Status     StatusTier     `json:"status"`
	Selection  []SelectedItem `json:"selection"`
	Totals     Totals         `json:"totals"`
	TargetKcal int            `json:"targetKcal,omitempty"`
	OverTarget bool           `json:"overTarget"`
	Warning    string         `json:"warning,omitempty"`
}

// Checkpoint is the single durable record used to resume a session.
type Checkpoint struct {
	SessionID             string         `json:"sessionId"`
	Profile               Profile        `json:"profile"`
	Status                StatusTier     `json:"status"`
	Selection             []SelectedItem `json:"selection"`
	Totals                Totals         `json:"totals"`
	ResumeStep            Step           `json:"resumeStep"`
	PendingWarningMessage string         `json:"pendingWarningMessage,omitempty"`
	SavedAt               time.Time      `json:"savedAt"`
}

// OverTargetChanged is emitted when the calorie total crosses the target.
type OverTargetChanged struct {
	OverTarget bool   `json:"overTarget"`
	Totals     Totals `json:"totals"`
	TargetKcal int    `json:"targetKcal"`
}
