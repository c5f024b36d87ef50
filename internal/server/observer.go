// internal/server/observer.go
package server

import (
	"mcp-diet-plan/internal/models"
)

// observer collects wizard notifications raised while a tool call (or a
// deferred transition) holds the server lock. The next response drains them.
type observer struct {
	events []models.OverTargetChanged
}

// StepChanged is a no-op; every response reports the current step and the
// wizard logs transitions itself.
func (o *observer) StepChanged(from, to models.Step, warning string) {}

func (o *observer) OverTargetChanged(ev models.OverTargetChanged) {
	o.events = append(o.events, ev)
}

func (o *observer) drain() []models.OverTargetChanged {
	out := o.events
	o.events = nil
	return out
}
