package tarneeb

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from firing. It returns false if it already fired or was stopped
	Stop() bool
}

// Scheduler arms timers for the trick settle delay and the pause between rounds
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler uses the time package
type RealScheduler struct{}

// AfterFunc calls fn in its own goroutine after d
func (RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// ManualScheduler only fires callbacks when Fire() is called. Intended for tests
type ManualScheduler struct {
	lock    sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	scheduler *ManualScheduler
	delay     time.Duration
	fn        func()
	stopped   bool
}

// Stop removes the timer from the pending list
func (m *manualTimer) Stop() bool {
	m.scheduler.lock.Lock()
	defer m.scheduler.lock.Unlock()

	if m.stopped {
		return false
	}

	m.stopped = true
	for i, t := range m.scheduler.pending {
		if t == m {
			m.scheduler.pending = append(m.scheduler.pending[:i], m.scheduler.pending[i+1:]...)
			return true
		}
	}

	return false
}

// AfterFunc records the callback
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.lock.Lock()
	defer s.lock.Unlock()

	t := &manualTimer{
		scheduler: s,
		delay:     d,
		fn:        fn,
	}
	s.pending = append(s.pending, t)
	return t
}

// Pending returns the number of armed timers
func (s *ManualScheduler) Pending() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.pending)
}

// NextDelay returns the delay of the oldest armed timer, or zero
func (s *ManualScheduler) NextDelay() time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.pending) == 0 {
		return 0
	}

	return s.pending[0].delay
}

// Fire runs every armed callback and returns how many ran
// Timers armed by the callbacks themselves stay pending
func (s *ManualScheduler) Fire() int {
	s.lock.Lock()
	timers := s.pending
	s.pending = nil
	for _, t := range timers {
		t.stopped = true
	}
	s.lock.Unlock()

	for _, t := range timers {
		t.fn()
	}

	return len(timers)
}
