package wizard

import (
	"context"
	"errors"
	"time"

	"mcp-diet-plan/internal/models"
)

type memStore struct {
	cp      *models.Checkpoint
	saves   int
	clears  int
	saveErr error
}

func (s *memStore) SaveCheckpoint(_ context.Context, cp models.Checkpoint) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.cp = &cp
	return nil
}

func (s *memStore) LoadCheckpoint(context.Context) (*models.Checkpoint, error) {
	if s.cp == nil {
		return nil, nil
	}
	cp := *s.cp
	return &cp, nil
}

func (s *memStore) ClearCheckpoint(context.Context) error {
	s.clears++
	s.cp = nil
	return nil
}

var errDiskFull = errors.New("disk full")

type manualTask struct {
	delay   time.Duration
	f       func()
	stopped bool
	ran     bool
}

// manualScheduler only runs callbacks when the test says so.
type manualScheduler struct {
	tasks []*manualTask
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := &manualTask{delay: d, f: f}
	s.tasks = append(s.tasks, t)
	return func() bool {
		if t.stopped || t.ran {
			return false
		}
		t.stopped = true
		return true
	}
}

// fire runs every task that was not stopped.
func (s *manualScheduler) fire() {
	for _, t := range s.tasks {
		if !t.stopped && !t.ran {
			t.ran = true
			t.f()
		}
	}
}

// fireAll runs every task, including stopped ones, to mimic a timer that
// fired just before it was stopped.
func (s *manualScheduler) fireAll() {
	for _, t := range s.tasks {
		if !t.ran {
			t.ran = true
			t.f()
		}
	}
}

type stepChange struct {
	from, to models.Step
	warning  string
}

type recordingObserver struct {
	steps []stepChange
	flips []models.OverTargetChanged
}

func (o *recordingObserver) StepChanged(from, to models.Step, warning string) {
	o.steps = append(o.steps, stepChange{from, to, warning})
}

func (o *recordingObserver) OverTargetChanged(ev models.OverTargetChanged) {
	o.flips = append(o.flips, ev)
}
