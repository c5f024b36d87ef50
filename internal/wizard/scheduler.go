package wizard

import (
	"sync"
	"time"
)

// Scheduler runs f once after d. The returned stop function cancels a
// callback that has not started yet and reports whether it did.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// TimerScheduler is backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// LockedScheduler runs callbacks while holding Mu, so a deferred transition
// is serialized with the caller's other calls into the wizard.
type LockedScheduler struct {
	Mu    sync.Locker
	Inner Scheduler
}

func (s LockedScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return s.Inner.AfterFunc(d, func() {
		s.Mu.Lock()
		defer s.Mu.Unlock()
		f()
	})
}
